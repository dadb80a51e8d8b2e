package scrape

import (
	"net/url"
	"strings"
)

type demoEntry struct {
	key     string
	content Content
}

// matched in order against the URL host
var demoCorpus = []demoEntry{
	{key: "nytimes", content: Content{
		Title:  "Climate Initiative Faces Opposition in Congress",
		Source: "New York Times",
		Content: "WASHINGTON — The ambitious climate initiative proposed by the administration faces increasing opposition in Congress as lawmakers debate its economic implications and timeline for implementation.\n\n" +
			"The plan, which aims to reduce carbon emissions by 50% by 2030, has drawn criticism from industry representatives who argue that the timeline is too aggressive and could lead to job losses in traditional energy sectors.\n\n" +
			"\"We need a balanced approach that considers both environmental and economic impacts,\" said Senator James Wilson, who leads the opposition to the current proposal. \"The transition to renewable energy should be gradual and measured.\"\n\n" +
			"Supporters of the plan point to scientific consensus indicating that immediate action is necessary to mitigate the effects of climate change. They argue that the initiative would create more jobs in the renewable energy sector than would be lost in fossil fuel industries.\n\n" +
			"Environmental advocacy groups have rallied behind the proposal, organizing demonstrations in major cities and launching educational campaigns about the potential benefits of a green economy.\n\n" +
			"As debates continue, administration officials have expressed willingness to consider amendments to the timeline while maintaining the core emissions reduction target. Negotiations are expected to continue through the month before a final vote is scheduled.",
	}},
	{key: "wsj", content: Content{
		Title:  "Climate Plan's Economic Impact Raises Concerns Among Businesses",
		Source: "Wall Street Journal",
		Content: "The administration's climate initiative is facing scrutiny from business leaders and economic analysts who question its potential impact on economic growth and employment in key industries.\n\n" +
			"According to a recent industry-sponsored study, the proposed emissions reduction target could increase energy costs by up to 25% for manufacturers, potentially affecting their competitive position in global markets.\n\n" +
			"\"While the goals are commendable, the timeline doesn't account for the practical realities of industrial adaptation,\" said Jennifer Roberts, chief economist at Capital Research Institute. \"A more gradual approach would allow businesses to develop and implement effective strategies without significant economic disruption.\"\n\n" +
			"The plan calls for substantial investments in renewable energy infrastructure, which proponents argue will create economic opportunities and technological innovation. Government estimates suggest that the initiative could generate up to 300,000 new jobs in clean energy sectors.\n\n" +
			"However, representatives from states with economies heavily dependent on fossil fuel production have expressed concerns about the transition timeline. \"Our communities need more time and support to diversify their economic base,\" said Governor Thomas Brown.\n\n" +
			"Market analysts remain divided on the long-term economic implications, with some pointing to potential growth opportunities in emerging green technologies and others highlighting short-term adjustment costs in traditional industries.",
	}},
	{key: "foxnews", content: Content{
		Title:  "Radical Climate Agenda Could Cost American Jobs and Raise Energy Prices",
		Source: "Fox News",
		Content: "The administration's aggressive climate plan is facing growing resistance as experts warn it could destroy thousands of American jobs and significantly raise energy prices for everyday consumers.\n\n" +
			"The controversial proposal, which critics describe as an unprecedented government intrusion into the energy market, would impose strict regulations on fossil fuel production while pouring taxpayer dollars into unproven green technologies.\n\n" +
			"\"This is nothing less than a war on American energy independence,\" said Congressman Robert Johnson. \"We've finally achieved energy self-sufficiency, and now they want to throw it all away for an ideological agenda.\"\n\n" +
			"Industry analysts predict that household energy costs could rise by as much as 30% if the plan is implemented as currently written. The hardest hit would be working-class families in states that rely heavily on coal and natural gas for electricity generation.\n\n" +
			"Several state governors have announced plans to challenge the initiative, arguing that it exceeds federal authority and would cause irreparable harm to their economies. \"We'll protect our workers and our industries from this regulatory overreach,\" said one governor from a coal-producing state.\n\n" +
			"Supporters of the administration maintain that the transition to renewable energy is necessary and would ultimately create more jobs than it eliminates, but many economic experts remain skeptical of these claims.",
	}},
	{key: "washingtonpost", content: Content{
		Title:  "Climate Plan Sparks Debate Over Economic Transition Timeline",
		Source: "Washington Post",
		Content: "The administration's proposed climate initiative has generated intense debate in Washington about how quickly the U.S. economy can and should transition away from fossil fuels.\n\n" +
			"The plan, which includes the most ambitious emissions reduction targets in U.S. history, would accelerate the adoption of renewable energy through a combination of regulations, tax incentives, and direct government investment.\n\n" +
			"Economic analysts from across the political spectrum have offered varying assessments of the proposal's potential impact. Studies from center-left think tanks suggest the plan could create a net increase in jobs, while business-aligned research groups warn of potential disruptions in energy-intensive industries.\n\n" +
			"\"The question isn't whether we should transition to cleaner energy, but how to manage that transition responsibly,\" said Dr. Eleanor Hughes, an energy economist at Capital University. \"The timeline needs to balance environmental urgency with economic stability.\"\n\n" +
			"The proposal has revealed divisions even within industries. While traditional energy companies have generally opposed the accelerated timeline, a growing number of corporations have expressed support for more aggressive climate policies, citing long-term economic benefits and investor pressure.\n\n" +
			"Congressional hearings on the plan began last week, with testimony from environmental experts, industry representatives, and community leaders from regions that would be most affected by the proposed changes.",
	}},
	{key: "cnn", content: Content{
		Title:  "Administration's Climate Initiative Faces Crucial Congressional Battle",
		Source: "CNN",
		Content: "The administration's climate plan faces a pivotal moment as Congress prepares to debate its most controversial provisions amid intense pressure from both environmental advocates and industry groups.\n\n" +
			"The ambitious proposal would represent the most significant climate action in U.S. history, establishing emissions reduction targets that align with scientific recommendations for preventing the worst impacts of global warming.\n\n" +
			"Environmental activists have praised the plan as long overdue. \"This is the comprehensive approach we've needed for decades,\" said Maria Rodriguez of Climate Action Alliance. \"The science is clear that we need to act now.\"\n\n" +
			"However, industry representatives have raised concerns about the pace of the proposed transition. \"We support addressing climate change, but this timeline could create serious economic disruptions,\" said James Thompson, president of the National Energy Association.\n\n" +
			"The congressional debate is expected to focus on several key areas, including the level of support for communities dependent on fossil fuel industries, incentives for clean energy development, and mechanisms for measuring and enforcing emissions reductions.\n\n" +
			"Public opinion polls show a majority of Americans support increased action on climate change, though views differ significantly on the appropriate scale and speed of the transition. The administration has emphasized that the plan includes provisions to protect vulnerable communities and workers.",
	}},
}

const defaultDemoKey = "washingtonpost"

// Demo returns the canned article for a URL. Unknown or unparsable URLs
// get the default entry so the result stays deterministic.
func Demo(rawURL string) Content {
	if u, err := url.Parse(rawURL); err == nil {
		host := strings.ToLower(u.Hostname())
		for _, e := range demoCorpus {
			if strings.Contains(host, e.key) {
				return e.content
			}
		}
	}
	for _, e := range demoCorpus {
		if e.key == defaultDemoKey {
			return e.content
		}
	}
	return demoCorpus[0].content
}

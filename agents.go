package meander

// AgentInfo is the display metadata attached to a waypoint box. The table is
// static; it is consulted only when building descriptors and for overlay text.
type AgentInfo struct {
	Index       int
	Name        string
	Description string
}

// agentTable is the built-in waypoint roster. Section indices beyond the
// table wrap via modulo, so lookups never go out of range.
var agentTable = []AgentInfo{
	{Name: "Aster", Description: "Keeps the first stretch of the path lit."},
	{Name: "Brume", Description: "Collects the fog that pools between sections."},
	{Name: "Cairn", Description: "Stacks a stone for every traveler that passes."},
	{Name: "Drift", Description: "Wanders off the path and always finds it again."},
	{Name: "Ember", Description: "Warms the milestones after dark."},
	{Name: "Fathom", Description: "Measures how far the path has grown."},
	{Name: "Gloam", Description: "Trades colors with the sky at each boundary."},
	{Name: "Haze", Description: "Blurs whatever lies beyond the window."},
}

// AgentAt returns the waypoint metadata for a section index. Indices past the
// table length wrap around; negative indices return the first entry.
func AgentAt(index int) AgentInfo {
	if index < 0 {
		index = 0
	}
	info := agentTable[index%len(agentTable)]
	info.Index = index
	return info
}

// AgentCount returns the number of distinct waypoint entries before wrapping.
func AgentCount() int {
	return len(agentTable)
}

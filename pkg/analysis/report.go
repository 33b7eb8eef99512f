package analysis

import (
	"fmt"
	"strings"
)

// BuildReport renders a plain-text summary of an analysis run: graph shape,
// measure statuses, the top hub rows, and (when provided) the community
// breakdown. It performs no I/O; callers decide where the text goes.
func BuildReport(result *Result, communities *CommunityDetection, topN int) string {
	var b strings.Builder

	b.WriteString("INTERACTION NETWORK ANALYSIS SUMMARY\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	fmt.Fprintf(&b, "Run ID: %s\n", result.RunID)
	fmt.Fprintf(&b, "Nodes: %d  Edges: %d\n",
		result.GraphStats.NodeCount, result.GraphStats.EdgeCount)
	fmt.Fprintf(&b, "Average degree: %.2f  Density: %.6f\n",
		result.GraphStats.AverageDegree, result.GraphStats.Density)
	fmt.Fprintf(&b, "Connected components: %d (largest: %d nodes)\n",
		result.ComponentCount, result.LargestComponent)
	fmt.Fprintf(&b, "Hub score 95th percentile: %.4f\n", result.HubScoreP95)
	fmt.Fprintf(&b, "Degree 95th percentile: %.2f\n\n", result.DegreeP95)

	if result.Degraded() {
		b.WriteString("Degraded measures:\n")
		for _, measure := range []string{
			MeasureDegree, MeasureBetweenness, MeasureCloseness,
			MeasureEigenvector, MeasurePageRank, MeasureClustering,
		} {
			if status, ok := result.Statuses[measure]; ok && status.Degraded() {
				fmt.Fprintf(&b, "  %s: %s\n", measure, status)
			}
		}
		b.WriteString("\n")
	}

	top := TopHubs(result.Table, topN)
	fmt.Fprintf(&b, "TOP %d HUB NODES\n", len(top))
	b.WriteString(strings.Repeat("-", 60) + "\n")
	fmt.Fprintf(&b, "%-4s %-20s %8s %10s %12s %10s\n",
		"#", "node", "degree", "hub", "betweenness", "pagerank")
	for i, row := range top {
		fmt.Fprintf(&b, "%-4d %-20s %8d %10.4f %12.4f %10.6f\n",
			i+1, row.NodeID, row.Degree, row.HubScore,
			row.BetweennessCentrality, row.PageRank)
	}
	b.WriteString("\n")

	if communities != nil {
		fmt.Fprintf(&b, "COMMUNITIES: %d (modularity %.4f)\n",
			communities.Partition.CommunityCount(), communities.Partition.Modularity)
		b.WriteString(strings.Repeat("-", 60) + "\n")
		for _, community := range communities.Partition.Communities {
			preview := community.Nodes
			if len(preview) > 8 {
				preview = preview[:8]
			}
			fmt.Fprintf(&b, "  community %d (%d nodes): %s",
				community.ID, community.Size, strings.Join(preview, ", "))
			if community.Size > len(preview) {
				fmt.Fprintf(&b, ", +%d more", community.Size-len(preview))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

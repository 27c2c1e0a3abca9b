package domain

// Cluster identifies one of the fixed geographic school clusters.
// The set is closed: ids never grow at runtime.
type Cluster int

const (
	// ClusterInabanga covers Inabanga and Dagohoy schools.
	ClusterInabanga Cluster = 0
	// ClusterClarin is the default bucket.
	ClusterClarin Cluster = 1
	// ClusterTubigon covers Tubigon, Cawayanan and Cabulijan schools.
	ClusterTubigon Cluster = 2

	// ClusterCount is the number of valid clusters.
	ClusterCount = 3
)

// Clusters returns all valid clusters in ascending id order.
// Iteration order matters for dominant-cluster tie-breaking.
func Clusters() [ClusterCount]Cluster {
	return [ClusterCount]Cluster{ClusterInabanga, ClusterClarin, ClusterTubigon}
}

// Valid reports whether c is one of the known clusters.
func (c Cluster) Valid() bool {
	return c >= ClusterInabanga && c < ClusterCount
}

// Name returns the human-readable cluster name.
func (c Cluster) Name() string {
	switch c {
	case ClusterInabanga:
		return "Inabanga Schools"
	case ClusterClarin:
		return "Clarin Schools"
	case ClusterTubigon:
		return "Tubigon Schools"
	default:
		return "Unknown Cluster"
	}
}

// Color returns the dashboard display color for the cluster.
func (c Cluster) Color() string {
	switch c {
	case ClusterInabanga:
		return "#0088FE"
	case ClusterClarin:
		return "#00C49F"
	case ClusterTubigon:
		return "#FFBB28"
	default:
		return ""
	}
}

// ClusterInfo is the static cluster table entry exposed on the health surface.
type ClusterInfo struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ClusterTable returns the full static cluster table.
func ClusterTable() []ClusterInfo {
	table := make([]ClusterInfo, 0, ClusterCount)
	for _, c := range Clusters() {
		table = append(table, ClusterInfo{ID: int(c), Name: c.Name(), Color: c.Color()})
	}
	return table
}

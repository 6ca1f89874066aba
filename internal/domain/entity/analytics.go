package entity

// Chart series shapes consumed by the console. Every series produced by the analytics
// usecase holds at least one entry.

type WavePoint struct {
	Name string `json:"name" bson:"_id"`
	Val  int64  `json:"val" bson:"val"`
}

type BarPoint struct {
	Name string `json:"name" bson:"_id"`
	Val  int64  `json:"val" bson:"val"`
}

type PiePoint struct {
	Name  string `json:"name" bson:"_id"`
	Value int64  `json:"value" bson:"value"`
}

type DotPoint struct {
	ID string `json:"_id,omitempty" bson:"_id"`
	X  int64  `json:"x" bson:"x"`
	Y  int64  `json:"y" bson:"y"`
}

type EngagementPoint struct {
	Name  string `json:"name" bson:"_id"`
	Posts int64  `json:"posts" bson:"posts"`
	Likes int64  `json:"likes" bson:"likes"`
}

type DashboardCharts struct {
	Wave []WavePoint `json:"wave"`
	Bar  []BarPoint  `json:"bar"`
	Pie  []PiePoint  `json:"pie"`
	Dot  []DotPoint  `json:"dot"`
}

type ReportCharts struct {
	EngagementTrends     []EngagementPoint `json:"engagementTrends"`
	CategoryDistribution []PiePoint        `json:"categoryDistribution"`
}

// StatusBreakdown counts every collection with a lifecycle field by status.
type StatusBreakdown struct {
	News        []PiePoint `json:"news"`
	Communities []PiePoint `json:"communities"`
	Events      []PiePoint `json:"events"`
	Reports     []PiePoint `json:"reports"`
}

type DashboardStat struct {
	Label  string `json:"label"`
	Value  int64  `json:"value"`
	Change string `json:"change"`
	Icon   string `json:"icon"`
}

type DashboardStats struct {
	Stats       []DashboardStat `json:"stats"`
	PendingNews []News          `json:"pendingNews"`
}

func PlaceholderWave() []WavePoint { return []WavePoint{{Name: "Today", Val: 0}} }

func PlaceholderBar() []BarPoint { return []BarPoint{{Name: "None", Val: 0}} }

func PlaceholderPie() []PiePoint { return []PiePoint{{Name: "None", Value: 0}} }

func PlaceholderDot() []DotPoint { return []DotPoint{{X: 0, Y: 0}} }

func PlaceholderEngagement() []EngagementPoint {
	return []EngagementPoint{{Name: "Empty", Posts: 0, Likes: 0}}
}

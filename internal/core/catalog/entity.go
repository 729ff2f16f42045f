package catalog

// User is the farmer account shown on the profile screen
type User struct {
	UserID         string `json:"userId"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Language       string `json:"language"`
	FarmProfileID  string `json:"farmProfileId"`
	AadhaarHash    string `json:"aadhaarHash"`
	UniqueFarmID   string `json:"uniqueFarmId"`
	UniqueFarmerID string `json:"uniqueFarmerId"`
}

// Farm describes the farmer's holding
type Farm struct {
	FarmID      string  `json:"farmId"`
	UserID      string  `json:"userId"`
	State       string  `json:"state"`
	District    string  `json:"district"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	SoilType    string  `json:"soilType"`
	Area        float64 `json:"area"`
	WaterLevel  string  `json:"waterLevel"`
	PrimaryCrop string  `json:"primaryCrop"`
}

type Profile struct {
	User User `json:"user"`
	Farm Farm `json:"farm"`
}

type Task struct {
	TaskID   string `json:"taskId"`
	FarmID   string `json:"farmId"`
	Date     string `json:"date"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Points   int    `json:"points"`
	Priority string `json:"priority"`
}

type TaskList struct {
	Results []Task `json:"results"`
}

// TaskMark reports progress on a task
type TaskMark struct {
	TaskID string
	Status string
}

type TaskMarkResult struct {
	OK            bool   `json:"ok"`
	TaskID        string `json:"taskId"`
	Status        string `json:"status"`
	PointsAwarded int    `json:"pointsAwarded"`
	ReceiptID     string `json:"receiptId"`
}

type PolicyQuery struct {
	Query string
	State string
	Crop  string
}

type Policy struct {
	PolicyID     string   `json:"policyId"`
	Title        string   `json:"title"`
	Eligibility  string   `json:"eligibility"`
	RequiredDocs []string `json:"requiredDocs"`
}

type PolicyResults struct {
	Query   string   `json:"query"`
	State   string   `json:"state"`
	Crop    string   `json:"crop"`
	Results []Policy `json:"results"`
}

type LeaderboardEntry struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Rank   int    `json:"rank"`
}

type Leaderboard struct {
	Scope   string             `json:"scope"`
	ID      string             `json:"id"`
	Entries []LeaderboardEntry `json:"entries"`
}

type DiseaseLabel struct {
	Tag        string  `json:"tag"`
	Confidence float64 `json:"confidence"`
}

type Remedy struct {
	Type   string   `json:"type"`
	Steps  []string `json:"steps"`
	Dosage string   `json:"dosage"`
}

// DiseaseReport is the result of a crop image check
type DiseaseReport struct {
	Labels   []DiseaseLabel `json:"labels"`
	Remedies []Remedy       `json:"remedies"`
}

package entity

// Hospital is a read-mostly directory record; Name is the unique key used
// for filtering doctors. New hospitals may be appended but there is no
// update or delete path.
type Hospital struct {
	Name          string `json:"name"`
	City          string `json:"city"`
	BranchCode    string `json:"branchCode"`
	TotalPatients int    `json:"totalPatients"`
	TotalDoctors  int    `json:"totalDoctors"`
}

package dto

// JobUpdateRequest is the full field set PATCH /updatePost overwrites. The set
// is fixed by the contract and includes jobApplicantsNumber: a caller can
// desynchronize the counter from the seekers collection through this route.
// Vacancy and the counter keep whatever JSON shape the caller sent.
type JobUpdateRequest struct {
	JobBanner           string `json:"jobBanner"`
	CompanyName         string `json:"companyName"`
	CompanyLogo         string `json:"companyLogo"`
	JobTitle            string `json:"jobTitle"`
	LoggedInUser        string `json:"loggedInUser"`
	JobCategory         string `json:"jobCategory"`
	SalaryRange         string `json:"salaryRange"`
	JobDescription      string `json:"jobDescription"`
	JobPostingDate      string `json:"jobPostingDate"`
	ApplicationDeadline string `json:"applicationDeadline"`
	Vacancy             any    `json:"vacancy"`
	JobApplicantsNumber any    `json:"jobApplicantsNumber"`
	UserEmail           string `json:"userEmail"`
}

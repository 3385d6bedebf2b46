package models

type FinancialRecord struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Type        string  `json:"type"` // Income or Expense
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type CareerGoal struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	TargetDate string `json:"targetDate"`
	Status     string `json:"status"` // Pending, In Progress, Achieved
}

type CoachingGig struct {
	ID          string `json:"id"`
	ClientName  string `json:"clientName"`
	Requirement string `json:"requirement"`
	Rate        string `json:"rate"`
	Location    string `json:"location"`
}

type JobOpportunity struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Type         string `json:"type"` // Government, Private, Coaching
	Location     string `json:"location"`
	SalaryRange  string `json:"salaryRange"`
	Eligibility  string `json:"eligibility"`
	Deadline     string `json:"deadline"`
}

type Tournament struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Date                 string `json:"date"`
	Location             string `json:"location"`
	PrizePool            string `json:"prizePool"`
	EntryFee             string `json:"entryFee"`
	RegistrationDeadline string `json:"registrationDeadline"`
}

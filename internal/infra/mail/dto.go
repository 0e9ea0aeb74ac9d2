package mail

type FollowUpEmailData struct {
	EmployeeName string
	VisitorName  string
	VisitorPhone string
	Interests    string
	FollowUpDate string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}

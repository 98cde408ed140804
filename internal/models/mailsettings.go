package models

// MailSettings holds the SMTP relay parameters editable from the admin
// mailbox screen. Every field defaults to empty; the mail sender falls back
// to environment configuration for anything left blank.
type MailSettings struct {
	SMTPHost   string `json:"smtpHost" validate:"max=200"`
	SMTPPort   string `json:"smtpPort" validate:"max=10"`
	SMTPSecure bool   `json:"smtpSecure"`
	SMTPUser   string `json:"smtpUser" validate:"max=200"`
	SMTPPass   string `json:"smtpPass" validate:"max=200"`
	MailFrom   string `json:"mailFrom" validate:"max=200"`
	MailTo     string `json:"mailTo" validate:"max=200"`
}

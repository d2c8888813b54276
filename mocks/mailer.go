package mocks

// SentEmail records one outgoing message, whatever kind it was.
type SentEmail struct {
	Kind       string
	To         string
	Recipients []string
	Subject    string
	Body       string
}

// Mailer records every send instead of talking to SMTP. Err, when set,
// is returned from every method so tests can exercise the best-effort
// notification paths.
type Mailer struct {
	Sent []SentEmail
	Err  error
}

func NewMailer() *Mailer {
	return &Mailer{}
}

func (m *Mailer) record(email SentEmail) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, email)
	return nil
}

func (m *Mailer) SendWelcome(to, name string) error {
	return m.record(SentEmail{Kind: "welcome", To: to, Body: name})
}

func (m *Mailer) SendVerification(to, link string) error {
	return m.record(SentEmail{Kind: "verification", To: to, Body: link})
}

func (m *Mailer) SendPasswordReset(to, link string) error {
	return m.record(SentEmail{Kind: "password_reset", To: to, Body: link})
}

func (m *Mailer) SendArticlePublished(to, articleTitle, articleURL string) error {
	return m.record(SentEmail{Kind: "article_published", To: to, Subject: articleTitle, Body: articleURL})
}

func (m *Mailer) SendCommentNotification(to, articleTitle, commenterName, commentContent, articleURL string) error {
	return m.record(SentEmail{Kind: "comment_notification", To: to, Subject: articleTitle, Body: commentContent})
}

func (m *Mailer) SendNewsletter(recipients []string, subject, content string) error {
	return m.record(SentEmail{Kind: "newsletter", Recipients: recipients, Subject: subject, Body: content})
}

func (m *Mailer) SendContactResponse(to, name, message string) error {
	return m.record(SentEmail{Kind: "contact_response", To: to, Body: message})
}

// SentOfKind filters the record by message kind.
func (m *Mailer) SentOfKind(kind string) []SentEmail {
	var matched []SentEmail
	for _, email := range m.Sent {
		if email.Kind == kind {
			matched = append(matched, email)
		}
	}
	return matched
}

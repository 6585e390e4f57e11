package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"log"

	"hr-management-backend/internal/model"

	"gopkg.in/gomail.v2"
)

var payslipTemplate = template.Must(template.New("payslip").Parse(`<h2>Payslip {{.Month}}/{{.Year}}</h2>
<p>{{.Employee.FullName}} ({{.Employee.Code}})</p>
<table>
<tr><td>Work days</td><td>{{.WorkDays}}</td></tr>
<tr><td>Working hours</td><td>{{printf "%.2f" .WorkingHours}}</td></tr>
<tr><td>Base salary</td><td>{{.BaseSalary}}</td></tr>
<tr><td>Allowance</td><td>{{.Allowance}}</td></tr>
<tr><td>Bonus</td><td>{{.Bonus}}</td></tr>
<tr><td>Deduction</td><td>{{.Deduction}}</td></tr>
<tr><td><b>Net salary</b></td><td><b>{{.NetSalary}}</b></td></tr>
</table>`))

// Dialer is the part of gomail.Dialer the mailer needs.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPMailer struct {
	dialer Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func NewWithDialer(d Dialer, from string) *SMTPMailer {
	return &SMTPMailer{dialer: d, from: from}
}

func (m *SMTPMailer) SendPayslip(p *model.Payroll) error {
	msg, err := BuildPayslip(m.from, p)
	if err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send payslip %d: %w", p.ID, err)
	}
	return nil
}

// BuildPayslip renders the payslip message for p.
func BuildPayslip(from string, p *model.Payroll) (*gomail.Message, error) {
	var body bytes.Buffer
	if err := payslipTemplate.Execute(&body, p); err != nil {
		return nil, fmt.Errorf("render payslip: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", p.Employee.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Payslip %s/%s", p.Month, p.Year))
	msg.SetBody("text/html", body.String())
	return msg, nil
}

// LogMailer writes payslips to the log when SMTP is not configured.
type LogMailer struct{}

func (LogMailer) SendPayslip(p *model.Payroll) error {
	log.Printf("payslip %s/%s for %s (net %d) not mailed: SMTP_HOST unset", p.Month, p.Year, p.Employee.Email, p.NetSalary)
	return nil
}

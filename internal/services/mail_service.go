package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"time"
)

type IMailService interface {
	// SendAccessKey delivers a package access key to a buyer who has no
	// account; the key is the whole credential, so the mail is the
	// delivery channel for purchased access.
	SendAccessKey(to, accessKey, packageID string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	// UseSSL selects implicit TLS (465); otherwise STARTTLS (587).
	UseSSL bool

	AppName    string
	AppBaseURL string
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) IMailService {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("accessHTML").Parse(accessHTMLTemplate)),
		textTpl: template.Must(template.New("accessText").Parse(accessTextTemplate)),
	}
}

type accessEmailData struct {
	AppName   string
	AccessKey string
	ViewURL   string
	Year      int
}

const accessHTMLTemplate = `<!doctype html>
<html>
<head><meta charset="UTF-8"><title>Your access key</title></head>
<body style="font-family:-apple-system,Segoe UI,Roboto,Helvetica,Arial,sans-serif;background:#f8fafc;color:#0f172a;padding:32px">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;border-radius:12px;padding:32px">
    <h1 style="font-size:22px">Your {{.AppName}} access key</h1>
    <p>Use this key together with your email address to open your purchased package:</p>
    <p style="font-size:20px;font-weight:700;letter-spacing:2px;background:#f1f5f9;border-radius:8px;padding:16px;text-align:center">{{.AccessKey}}</p>
    {{if .ViewURL}}<p><a href="{{.ViewURL}}" style="color:#2563eb">Open your package</a></p>{{end}}
    <p style="color:#64748b;font-size:13px">If you did not expect this email you can ignore it.</p>
    <p style="color:#64748b;font-size:13px">&copy; {{.Year}} {{.AppName}}</p>
  </div>
</body>
</html>`

const accessTextTemplate = `Your {{.AppName}} access key

Use this key together with your email address to open your purchased package:

    {{.AccessKey}}

{{if .ViewURL}}Open your package: {{.ViewURL}}
{{end}}
— {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) SendAccessKey(to, accessKey, packageID string) error {
	data := accessEmailData{
		AppName:   s.cfg.AppName,
		AccessKey: accessKey,
		Year:      time.Now().Year(),
	}
	if s.cfg.AppBaseURL != "" {
		data.ViewURL = fmt.Sprintf("%s/access/%s", s.cfg.AppBaseURL, packageID)
	}

	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}

	return s.send(to, "Your access key", hb.String(), tb.String())
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n\r\n", textBody)
	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n%s\r\n\r\n", htmlBody)
	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()
		return s.deliver(conn, to, msg.Bytes())
	}

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
			return err
		}
	}
	return s.push(c, auth, to, msg.Bytes())
}

func (s *smtpMailService) deliver(conn net.Conn, to string, msg []byte) error {
	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	return s.push(c, auth, to, msg)
}

func (s *smtpMailService) push(c *smtp.Client, auth smtp.Auth, to string, msg []byte) error {
	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

package mailer

import (
	"errors"
	"fmt"
	"log"
	"time"

	gomail "gopkg.in/gomail.v2"
)

// ErrSendTimeout: pengiriman lewat batas waktu, dianggap gagal kirim biasa
var ErrSendTimeout = errors.New("email sending timed out")

const defaultTimeout = 10 * time.Second

/* =========================================================
   Sender
========================================================= */

type Sender struct {
	from    string
	timeout time.Duration

	// sendFn bisa dioverride di test (tanpa SMTP beneran)
	sendFn func(*gomail.Message) error
}

func NewSender(host string, port int, user, password string) *Sender {
	dialer := gomail.NewDialer(host, port, user, password)
	return &Sender{
		from:    fmt.Sprintf("Lewisham Adult Learning <%s>", user),
		timeout: defaultTimeout,
		sendFn: func(m *gomail.Message) error {
			return dialer.DialAndSend(m)
		},
	}
}

// Send mengirim email HTML; DialAndSend diadu dengan timeout
func (s *Sender) Send(to, subject, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	done := make(chan error, 1)
	go func() {
		done <- s.sendFn(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("[ERROR] Failed to send email to %s: %v", to, err)
			return err
		}
		log.Printf("[INFO] Email sent successfully to %s", to)
		return nil
	case <-time.After(s.timeout):
		log.Printf("[ERROR] Email to %s timed out after %s", to, s.timeout)
		return ErrSendTimeout
	}
}

// SendAsync: fire-and-forget dengan error channel sendiri.
// Caller boleh baca channel atau abaikan; error tidak pernah
// dilempar balik ke response path.
func (s *Sender) SendAsync(to, subject, html string) <-chan error {
	ch := make(chan error, 1)
	go func() {
		ch <- s.Send(to, subject, html)
		close(ch)
	}()
	return ch
}

package mailer

import "fmt"

// BuildEnrollmentConfirmation membangun body email konfirmasi enrollment.
// Layout final email adalah urusan tim marketing; ini versi minimal.
func BuildEnrollmentConfirmation(studentName, courseName, startDate string, amount float64) (subject, html string) {
	subject = fmt.Sprintf("Enrollment Confirmed: %s", courseName)
	html = fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif; color: #1b263b;">
		<div style="max-width: 600px; margin: 0 auto; padding: 24px;">
			<h2>You're enrolled! 🎉</h2>
			<p>Hi %s,</p>
			<p>Your payment of <strong>&pound;%.2f</strong> has been received and your
			place on <strong>%s</strong> is confirmed.</p>
			<p>Course starts: <strong>%s</strong></p>
			<p>We will be in touch with joining instructions before the start date.</p>
			<p style="font-size: 12px; color: #888;">Lewisham Adult Learning</p>
		</div>
	</body>
	</html>`, studentName, amount, courseName, startDate)
	return subject, html
}

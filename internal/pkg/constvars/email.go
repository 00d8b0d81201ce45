package constvars

const (
	EmailBookingConfirmedSubjectFormat = "Your appointment for %s is confirmed"

	EmailBookingConfirmedBodyFormat = `<h3>Your appointment is confirmed</h3>
<div>
	<p>Your appointment for %s</p>
	<p>Please visit us on %s at %s</p>
	<p>Thanks from Doctors Portal</p>
</div>`

	EmailSendHTMLSubjectFormat = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
)

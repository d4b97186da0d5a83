package service

import (
	"fmt"
	"html/template"
	"strings"

	bookingModel "cruisevoyager/internal/domains/booking/model"
	cruiseModel "cruisevoyager/internal/domains/cruise/model"
	userModel "cruisevoyager/internal/domains/user/model"
	"cruisevoyager/shared/constant"
	"cruisevoyager/shared/timezone"
)

var bookingConfirmationTmpl = template.Must(template.New("booking_confirmation").Parse(`
<h1>Your cruise is booked!</h1>
<p>Thank you for booking with Cruise Voyager. Here are your details:</p>
<table>
  <tr><td>Booking reference</td><td>{{.BookingID}}</td></tr>
  <tr><td>Cruise</td><td>{{.CruiseTitle}} ({{.ShipName}})</td></tr>
  <tr><td>Destination</td><td>{{.Destination}}</td></tr>
  <tr><td>Departure</td><td>{{.DepartureDate}} from {{.DeparturePort}}</td></tr>
  <tr><td>Return</td><td>{{.ReturnDate}}</td></tr>
  <tr><td>Cabin</td><td>{{.CabinType}}</td></tr>
  <tr><td>Guests</td><td>{{.Guests}}</td></tr>
  <tr><td>Total</td><td>${{.Total}}</td></tr>
  <tr><td>Payment status</td><td>{{.Status}}</td></tr>
</table>
<p>We will contact you at {{.ContactEmail}} with any updates.</p>
`))

var verificationTmpl = template.Must(template.New("verification").Parse(`
<h1>Welcome aboard, {{.Name}}!</h1>
<p>Please confirm your email address to finish setting up your account.</p>
<p><a href="{{.Link}}">Verify my email</a></p>
<p>If you did not create this account, you can ignore this message.</p>
`))

var passwordResetTmpl = template.Must(template.New("password_reset").Parse(`
<h1>Password reset requested</h1>
<p>Hi {{.Name}}, we received a request to reset your password.</p>
<p><a href="{{.Link}}">Choose a new password</a></p>
<p>This link expires in one hour. If you did not request a reset, no action is needed.</p>
`))

func renderBookingConfirmation(booking bookingModel.Booking, cruise cruiseModel.Cruise) (string, error) {
	var buf strings.Builder

	err := bookingConfirmationTmpl.Execute(&buf, map[string]any{
		"BookingID":     booking.ID,
		"CruiseTitle":   cruise.Title,
		"ShipName":      cruise.ShipName,
		"Destination":   cruise.Destination,
		"DepartureDate": timezone.Format(booking.DepartureDate, constant.DateOnlyFormat),
		"DeparturePort": cruise.DeparturePort,
		"ReturnDate":    timezone.Format(booking.ReturnDate, constant.DateOnlyFormat),
		"CabinType":     booking.CabinType,
		"Guests":        booking.NumberOfGuests,
		"Total":         fmt.Sprintf("%.2f", booking.TotalPrice),
		"Status":        booking.PaymentStatus,
		"ContactEmail":  booking.ContactEmail,
	})
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	return buf.String(), nil
}

func renderVerificationEmail(user userModel.User, link string) (string, error) {
	var buf strings.Builder

	err := verificationTmpl.Execute(&buf, map[string]any{
		"Name": displayName(user),
		"Link": link,
	})
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	return buf.String(), nil
}

func renderPasswordResetEmail(user userModel.User, link string) (string, error) {
	var buf strings.Builder

	err := passwordResetTmpl.Execute(&buf, map[string]any{
		"Name": displayName(user),
		"Link": link,
	})
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	return buf.String(), nil
}

func displayName(user userModel.User) string {
	if user.FirstName != "" {
		return user.FirstName
	}

	return user.Username
}

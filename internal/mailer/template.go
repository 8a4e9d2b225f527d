package mailer

import "fmt"

const (
	SignupSubject = "Verify your Email - MethaKadai"
	ResetSubject  = "Password Reset Request"
)

// otpBody renders the branded OTP mail. Layout carried over from the shop's
// transactional mail design.
func otpBody(title, message, otp, footerText string) string {
	return fmt.Sprintf(`
    <div style="font-family: 'Helvetica Neue', Arial, sans-serif; max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; overflow: hidden; border: 1px solid #e0e0e0;">

        <div style="background-color: #2c3e50; padding: 20px; text-align: center;">
            <h1 style="color: #f1c40f; margin: 0; font-size: 24px; letter-spacing: 1px;">MethaKadai</h1>
            <p style="color: #ecf0f1; font-size: 12px; margin-top: 5px; text-transform: uppercase;">Quality Comfort Delivered</p>
        </div>

        <div style="padding: 30px 20px; text-align: center; color: #333;">
            <h2 style="color: #2c3e50; font-size: 20px; margin-bottom: 10px;">%s</h2>
            <p style="font-size: 14px; color: #666; line-height: 1.6; margin-bottom: 25px;">%s</p>

            <div style="background-color: #f8f9fa; border: 2px dashed #f1c40f; border-radius: 8px; padding: 15px; display: inline-block; margin-bottom: 25px;">
                <span style="font-size: 32px; font-weight: bold; color: #2c3e50; letter-spacing: 5px; font-family: monospace;">%s</span>
            </div>

            <p style="font-size: 13px; color: #999; margin-top: 10px;">
                This code is valid for <strong>10 minutes</strong>.<br>
                If you did not request this, please ignore this email.
            </p>
        </div>

        <div style="background-color: #f8f9fa; padding: 15px; text-align: center; border-top: 1px solid #eee;">
            <p style="font-size: 11px; color: #aaa; margin: 0;">
                &copy; 2025 MethaKadai. All rights reserved.<br>
                Salem, Tamil Nadu, India.
            </p>
            <p style="font-size: 11px; color: #aaa; margin-top: 5px;">%s</p>
        </div>
    </div>
    `, title, message, otp, footerText)
}

func SignupBody(code string) string {
	return otpBody(
		"Welcome to MethaKadai!",
		"Thank you for joining us. Please use the verification code below to complete your registration.",
		code,
		"Welcome to the family!",
	)
}

func ResetBody(code string) string {
	return otpBody(
		"Reset Your Password",
		"We received a request to reset your password. Use the code below to set a new password securely.",
		code,
		"Secure Account Alert",
	)
}

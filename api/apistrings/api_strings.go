package apistrings

const (
	/// Basic Identity Related Strings
	IdentityNotFound = "identity or session does not exist"
	InvalidPhone     = "please enter a valid 10-digit phone number"
	InvalidOTP       = "please enter the 6-digit OTP"
	IncorrectOTP     = "incorrect OTP, please try again"

	/// Core Functionality Error
	ServerError = "a server error occurred, please try again later"
	StageError  = "this step is not available yet, please complete the previous step"

	/// KYC Related Strings
	InvalidKYCInput  = "invalid KYC input, please check submitted information"
	NoApplication    = "please complete KYC first"
	InvalidAadhaar   = "please enter a valid 12-digit Aadhaar number"
	ConsentRequired  = "please accept all terms and conditions to continue"
	InvalidBirthDate = "please enter date of birth as YYYY-MM-DD"

	/// Document Related Strings
	InvalidDocumentType = "unknown document type"
	InvalidDocumentFile = "please select an image file"
	DocumentTooLarge    = "please select a file smaller than 5MB"
	DocumentsMissing    = "please upload all required documents"

	/// Payment Related Strings
	SelectPaymentMethod = "please select a payment method to continue"
	PaymentExists       = "the joining fee for this application has already been paid"
)

package dialog

// Step is the controller's primary state variable. Exactly one step is active
// at a time; StepFeedback additionally carries a question index held on the
// controller.
type Step string

// Dialogue steps.
const (
	StepIdle         Step = "idle"
	StepMerchantID   Step = "merchantId"
	StepConfirm      Step = "confirmMerchant"
	StepOTP          Step = "otpVerification"
	StepPOSType      Step = "posTypeSelection"
	StepTimeSlot     Step = "timeSlotSelection"
	StepFeedback     Step = "feedbackQuestion"
	StepTextFeedback Step = "textFeedback"
	StepComments     Step = "comments"
)

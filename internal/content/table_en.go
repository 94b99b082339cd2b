package content

import (
	"golang.org/x/text/language"

	"github.com/prabhakardwi/merchant-pos-buddy/internal/domain"
)

// englishTable is the reference content set. Other language tables mirror its
// identifiers exactly; only displayable strings differ.
func englishTable() Table {
	return Table{
		Lang:    language.English,
		BotName: "POS Buddy",

		MainMenu: []domain.Option{
			{ID: "installation", Label: "Installation Request", Value: "installation"},
			{ID: "deinstallation", Label: "Deinstallation Request", Value: "deinstallation"},
			{ID: "reactivation", Label: "Reactivation Request", Value: "reactivation"},
			{ID: "maintenance", Label: "Preventive Maintenance", Value: "maintenance"},
			{ID: "faq", Label: "Frequently Asked Questions", Value: "faq"},
		},

		FAQ: []domain.FAQItem{
			{
				Keywords: []string{"raise", "request", "submit", "create", "how to"},
				Question: "How to raise a request?",
				Answer:   "You can raise any service request by selecting the relevant option from the main menu.",
			},
			{
				Keywords: []string{"helpline", "number", "contact", "phone", "call"},
				Question: "What is the helpline number?",
				Answer:   "Our merchant helpline is available at 1800-XXX-XXXX from 9AM to 9PM.",
			},
			{
				Keywords: []string{"ticket", "status", "check", "request"},
				Question: "How to check ticket status?",
				Answer:   "Please provide your service ticket number, and we will fetch the current status.",
			},
			{
				Keywords: []string{"not working", "broken", "issue", "problem"},
				Question: "My POS is not working",
				Answer:   "Please raise a reactivation or maintenance request via the bot, and our engineer will contact you.",
			},
			{
				Keywords: []string{"time", "long", "duration", "installation"},
				Question: "How long does it take for installation?",
				Answer:   "Installation is typically completed within 24-48 working hours after request submission.",
			},
		},

		FeedbackQuestions: []FeedbackQuestion{
			{
				Key:            "scheduledDateMet",
				Question:       "Was the installation done on the scheduled date?",
				PositiveDetail: "On-time installations keep your business running without interruptions.",
			},
			{
				Key:            "engineerProfessional",
				Question:       "Was the engineer polite and professional?",
				PositiveDetail: "We train our engineers to deliver courteous, professional service.",
			},
			{
				Key:            "properInstallation",
				Question:       "Was the device installed properly and did the engineer show you the test transaction slip?",
				PositiveDetail: "A verified test transaction confirms your device is ready for live payments.",
			},
			{
				Key:            "postInstallationTest",
				Question:       "Was the POS machine tested post-installation?",
				PositiveDetail: "Post-installation testing catches configuration issues before your first sale.",
			},
			{
				Key:            "trainingProvided",
				Question:       "Was the demo/training provided?",
				PositiveDetail: "Hands-on training helps your staff serve customers faster.",
			},
			{
				Key:            "explanationClear",
				Question:       "Was the explanation of device usage clear?",
				PositiveDetail: "Clear guidance means fewer support calls down the road.",
			},
			{
				Key:            "functionsDemonstrated",
				Question:       "Were all functions (print, card swipe, QR scan, etc.) demonstrated?",
				PositiveDetail: "Knowing every function lets you accept every payment type.",
			},
			{
				Key:            "installationReportShared",
				Question:       "Was an installation report shared or signed?",
				PositiveDetail: "A signed report documents the handover for your records.",
			},
			{
				Key:            "merchantIdShared",
				Question:       "Were TIDs and merchant IDs shared?",
				PositiveDetail: "Keeping your TID and merchant ID handy speeds up any future support request.",
			},
		},

		InstallTimeSlots: []string{"10:00 AM", "12:00 PM", "3:00 PM"},
		FormTimeSlots: []string{
			"9:00 AM - 11:00 AM",
			"11:00 AM - 1:00 PM",
			"2:00 PM - 4:00 PM",
			"4:00 PM - 6:00 PM",
		},

		RequestTypeLabels: map[domain.RequestType]string{
			domain.RequestInstallation:   "Installation",
			domain.RequestDeinstallation: "Deinstallation",
			domain.RequestReactivation:   "Reactivation",
			domain.RequestMaintenance:    "Preventive Maintenance",
		},

		YesNo: []domain.Option{
			{ID: "yes", Label: "Yes", Value: "yes"},
			{ID: "no", Label: "No", Value: "no"},
		},
		POSTypes: []domain.Option{
			{ID: "apos", Label: "Advanced POS (APOS)", Value: string(domain.POSAdvanced)},
			{ID: "classicpos", Label: "Classic POS", Value: string(domain.POSClassic)},
		},
		FeedbackOffer: []domain.Option{
			{ID: "yes-feedback", Label: "Yes, give feedback", Value: "yes-feedback"},
			{ID: "skip-feedback", Label: "Skip for now", Value: "skip-feedback"},
		},

		Prompts: Prompts{
			Greeting:     "👋 Hello! I'm your POS support assistant. How can I help you today?",
			SelectOption: "Please select an option:",
			AnythingElse: "Is there anything else I can help you with?",

			FAQIntro: "Here are some frequently asked questions:",
			FAQMore:  "Is there anything else you'd like to know?",
			Fallback: "I'm not sure I understand. Let me help you with one of these options:",

			InstallationStart:    "Let's get started with your installation request. Please enter your Merchant ID:",
			MerchantRetry:        "Let's try again. Please enter your Merchant ID:",
			MerchantLookupFailed: "Sorry, we couldn't look up that Merchant ID right now. Please try again:",
			MerchantSummary: "I found your merchant information:\n" +
				"Business: %s\n" +
				"Address: %s\n" +
				"Contact: %s\n" +
				"Mobile: %s\n\n" +
				"Is this information correct? We'll need to verify with an OTP.",

			OTPSent:      "Great! To verify your identity, we've sent a one-time password (OTP) to the registered mobile number. For this demo, your OTP is: %s",
			OTPPrompt:    "Please enter the OTP to proceed:",
			OTPIncorrect: "Sorry, that OTP is incorrect. Please try again.",
			OTPResent:    "A new verification code has been sent: %s",
			OTPSuccess:   "OTP verification successful! Now, which type of POS would you like to install?",

			APOSFeatures: "You've selected Advanced POS (APOS). Here are some features:\n" +
				"• Integrated contactless payments\n" +
				"• Advanced inventory management\n" +
				"• Customer loyalty program\n" +
				"• Cloud-based reporting and analytics\n" +
				"• Multi-location support",
			ClassicFeatures: "You've selected Classic POS. Here are some features:\n" +
				"• Basic payment processing\n" +
				"• Simple inventory tracking\n" +
				"• Receipt printing\n" +
				"• Daily sales reports",
			SlotPrompt: "Please select a time slot for your installation on %s:",

			InstallConfirm: "✅ Installation Request Submitted\n" +
				"Your service ticket has been created:\n" +
				"Ticket #%s\n" +
				"Service engineer %s will visit your location on %s at %s.\n" +
				"Contact engineer at: %s",

			FeedbackOffer:      "We'd like to ask for your feedback on previous installations to earn service coins. Would you like to proceed with the feedback?",
			FeedbackCoinEarned: "You earned 1 Service Coin! 🪙",
			FeedbackSummary: "✅ Feedback Submitted\n" +
				"Thank you for your feedback! You've earned %d Service Coins for completing the survey.\n" +
				"Your feedback score: %d%%",
			TextFeedbackPrompt: "We'd love to hear more about your experience in detail.\n" +
				"Share your comments to earn 5 extra Service Coins!\n" +
				"Please provide any additional feedback or suggestions:",
			TextFeedbackThanks: "✅ Feedback Submitted - Thank You!\n" +
				"Thank you for your detailed feedback! You've earned %d extra Service Coins!",
			CommentsPrompt: "We would appreciate if you could share any additional comments about our service.\n" +
				"Share your comments to earn 3 extra Service Coins!",
			CommentsThanks: "✅ Comments Received - Thank You!\n" +
				"Thank you for your valuable comments! You've earned %d extra Service Coins!\n" +
				"Total Service Coins Earned: %d\n" +
				"Collect 100 coins to redeem for 3 free paper rolls!\n" +
				"Your comments: \"%s\"",
			InstallSkipClose: "Thank you for scheduling your POS installation. Is there anything else I can help you with?",

			FormIntro:     "Let's process your %s request. Please fill out the following form:",
			FormConfirm:   "✅ %s Request Submitted\nYour service ticket has been created:\nTicket #%s\nOur team will contact %s at %s to confirm the %s appointment during %s.",
			FormCancelled: "Request cancelled. How else can I assist you today?",

			LanguageChanged: "Language changed. Future messages will appear in English.",

			PlaceholderMerchantID: "Enter your Merchant ID...",
			PlaceholderOTP:        "Enter the OTP code...",
			PlaceholderFeedback:   "Type your feedback...",
			PlaceholderOption:     "Please select an option above...",
			PlaceholderDefault:    "Type your question here...",
		},
	}
}

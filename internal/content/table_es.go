package content

import (
	"golang.org/x/text/language"

	"github.com/prabhakardwi/merchant-pos-buddy/internal/domain"
)

// spanishTable mirrors englishTable identifier-for-identifier. Option ids,
// values, and feedback question keys must stay identical across tables so a
// language switch mid-conversation keeps the state machine consistent.
func spanishTable() Table {
	return Table{
		Lang:    language.Spanish,
		BotName: "POS Buddy",

		MainMenu: []domain.Option{
			{ID: "installation", Label: "Solicitud de instalación", Value: "installation"},
			{ID: "deinstallation", Label: "Solicitud de desinstalación", Value: "deinstallation"},
			{ID: "reactivation", Label: "Solicitud de reactivación", Value: "reactivation"},
			{ID: "maintenance", Label: "Mantenimiento preventivo", Value: "maintenance"},
			{ID: "faq", Label: "Preguntas frecuentes", Value: "faq"},
		},

		FAQ: []domain.FAQItem{
			{
				Keywords: []string{"crear", "solicitud", "enviar", "generar", "cómo"},
				Question: "¿Cómo genero una solicitud?",
				Answer:   "Puede generar cualquier solicitud de servicio seleccionando la opción correspondiente del menú principal.",
			},
			{
				Keywords: []string{"teléfono", "número", "contacto", "línea", "llamar"},
				Question: "¿Cuál es el número de atención?",
				Answer:   "Nuestra línea de atención a comercios está disponible en el 1800-XXX-XXXX de 9AM a 9PM.",
			},
			{
				Keywords: []string{"ticket", "estado", "consultar", "solicitud"},
				Question: "¿Cómo consulto el estado de mi ticket?",
				Answer:   "Indíquenos el número de su ticket de servicio y consultaremos el estado actual.",
			},
			{
				Keywords: []string{"no funciona", "dañado", "falla", "problema"},
				Question: "Mi POS no funciona",
				Answer:   "Genere una solicitud de reactivación o mantenimiento desde el bot y nuestro técnico se pondrá en contacto.",
			},
			{
				Keywords: []string{"tiempo", "demora", "duración", "instalación"},
				Question: "¿Cuánto tarda la instalación?",
				Answer:   "La instalación normalmente se completa dentro de 24-48 horas hábiles tras enviar la solicitud.",
			},
		},

		FeedbackQuestions: []FeedbackQuestion{
			{
				Key:            "scheduledDateMet",
				Question:       "¿La instalación se realizó en la fecha programada?",
				PositiveDetail: "Las instalaciones puntuales mantienen su negocio funcionando sin interrupciones.",
			},
			{
				Key:            "engineerProfessional",
				Question:       "¿El técnico fue amable y profesional?",
				PositiveDetail: "Capacitamos a nuestros técnicos para brindar un servicio cortés y profesional.",
			},
			{
				Key:            "properInstallation",
				Question:       "¿El dispositivo se instaló correctamente y el técnico le mostró el comprobante de la transacción de prueba?",
				PositiveDetail: "Una transacción de prueba verificada confirma que su dispositivo está listo para pagos reales.",
			},
			{
				Key:            "postInstallationTest",
				Question:       "¿Se probó la terminal POS después de la instalación?",
				PositiveDetail: "Las pruebas posteriores a la instalación detectan problemas de configuración antes de su primera venta.",
			},
			{
				Key:            "trainingProvided",
				Question:       "¿Se brindó la demostración/capacitación?",
				PositiveDetail: "La capacitación práctica ayuda a su personal a atender más rápido.",
			},
			{
				Key:            "explanationClear",
				Question:       "¿Fue clara la explicación del uso del dispositivo?",
				PositiveDetail: "Una guía clara significa menos llamadas de soporte en el futuro.",
			},
			{
				Key:            "functionsDemonstrated",
				Question:       "¿Se demostraron todas las funciones (impresión, tarjeta, escaneo QR, etc.)?",
				PositiveDetail: "Conocer cada función le permite aceptar todos los tipos de pago.",
			},
			{
				Key:            "installationReportShared",
				Question:       "¿Se compartió o firmó un acta de instalación?",
				PositiveDetail: "Un acta firmada documenta la entrega para sus registros.",
			},
			{
				Key:            "merchantIdShared",
				Question:       "¿Se compartieron los TID y los ID de comercio?",
				PositiveDetail: "Tener a mano su TID y su ID de comercio agiliza cualquier solicitud de soporte futura.",
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
			domain.RequestInstallation:   "Instalación",
			domain.RequestDeinstallation: "Desinstalación",
			domain.RequestReactivation:   "Reactivación",
			domain.RequestMaintenance:    "Mantenimiento preventivo",
		},

		YesNo: []domain.Option{
			{ID: "yes", Label: "Sí", Value: "yes"},
			{ID: "no", Label: "No", Value: "no"},
		},
		POSTypes: []domain.Option{
			{ID: "apos", Label: "POS Avanzado (APOS)", Value: string(domain.POSAdvanced)},
			{ID: "classicpos", Label: "POS Clásico", Value: string(domain.POSClassic)},
		},
		FeedbackOffer: []domain.Option{
			{ID: "yes-feedback", Label: "Sí, dar mi opinión", Value: "yes-feedback"},
			{ID: "skip-feedback", Label: "Omitir por ahora", Value: "skip-feedback"},
		},

		Prompts: Prompts{
			Greeting:     "👋 ¡Hola! Soy su asistente de soporte POS. ¿En qué puedo ayudarle hoy?",
			SelectOption: "Por favor seleccione una opción:",
			AnythingElse: "¿Hay algo más en lo que pueda ayudarle?",

			FAQIntro: "Estas son algunas preguntas frecuentes:",
			FAQMore:  "¿Hay algo más que le gustaría saber?",
			Fallback: "No estoy seguro de haber entendido. Permítame ayudarle con una de estas opciones:",

			InstallationStart:    "Comencemos con su solicitud de instalación. Por favor ingrese su ID de comercio:",
			MerchantRetry:        "Intentemos de nuevo. Por favor ingrese su ID de comercio:",
			MerchantLookupFailed: "Lo sentimos, no pudimos consultar ese ID de comercio en este momento. Inténtelo de nuevo:",
			MerchantSummary: "Encontré la información de su comercio:\n" +
				"Negocio: %s\n" +
				"Dirección: %s\n" +
				"Contacto: %s\n" +
				"Móvil: %s\n\n" +
				"¿Es correcta esta información? Necesitaremos verificarla con un OTP.",

			OTPSent:      "¡Perfecto! Para verificar su identidad, enviamos una contraseña de un solo uso (OTP) al número móvil registrado. Para esta demo, su OTP es: %s",
			OTPPrompt:    "Por favor ingrese el OTP para continuar:",
			OTPIncorrect: "Lo sentimos, ese OTP es incorrecto. Inténtelo de nuevo.",
			OTPResent:    "Se envió un nuevo código de verificación: %s",
			OTPSuccess:   "¡Verificación OTP exitosa! Ahora, ¿qué tipo de POS desea instalar?",

			APOSFeatures: "Ha seleccionado el POS Avanzado (APOS). Estas son algunas funciones:\n" +
				"• Pagos sin contacto integrados\n" +
				"• Gestión avanzada de inventario\n" +
				"• Programa de lealtad de clientes\n" +
				"• Reportes y analítica en la nube\n" +
				"• Soporte multi-sucursal",
			ClassicFeatures: "Ha seleccionado el POS Clásico. Estas son algunas funciones:\n" +
				"• Procesamiento básico de pagos\n" +
				"• Control simple de inventario\n" +
				"• Impresión de recibos\n" +
				"• Reportes diarios de ventas",
			SlotPrompt: "Por favor seleccione un horario para su instalación el %s:",

			InstallConfirm: "✅ Solicitud de instalación enviada\n" +
				"Su ticket de servicio ha sido creado:\n" +
				"Ticket #%s\n" +
				"El técnico de servicio %s visitará su local el %s a las %s.\n" +
				"Contacte al técnico en: %s",

			FeedbackOffer:      "Nos gustaría pedirle su opinión sobre instalaciones anteriores para ganar monedas de servicio. ¿Desea continuar con la encuesta?",
			FeedbackCoinEarned: "¡Ganó 1 Moneda de Servicio! 🪙",
			FeedbackSummary: "✅ Encuesta enviada\n" +
				"¡Gracias por su opinión! Ganó %d Monedas de Servicio por completar la encuesta.\n" +
				"Su puntuación: %d%%",
			TextFeedbackPrompt: "Nos encantaría conocer su experiencia con más detalle.\n" +
				"¡Comparta sus comentarios y gane 5 Monedas de Servicio adicionales!\n" +
				"Por favor escriba cualquier comentario o sugerencia:",
			TextFeedbackThanks: "✅ Opinión enviada - ¡Gracias!\n" +
				"¡Gracias por su opinión detallada! ¡Ganó %d Monedas de Servicio adicionales!",
			CommentsPrompt: "Le agradeceríamos cualquier comentario adicional sobre nuestro servicio.\n" +
				"¡Comparta sus comentarios y gane 3 Monedas de Servicio adicionales!",
			CommentsThanks: "✅ Comentarios recibidos - ¡Gracias!\n" +
				"¡Gracias por sus valiosos comentarios! ¡Ganó %d Monedas de Servicio adicionales!\n" +
				"Total de Monedas de Servicio ganadas: %d\n" +
				"¡Acumule 100 monedas y canjéelas por 3 rollos de papel gratis!\n" +
				"Sus comentarios: \"%s\"",
			InstallSkipClose: "Gracias por programar la instalación de su POS. ¿Hay algo más en lo que pueda ayudarle?",

			FormIntro:     "Procesemos su solicitud de %s. Por favor complete el siguiente formulario:",
			FormConfirm:   "✅ Solicitud de %s enviada\nSu ticket de servicio ha sido creado:\nTicket #%s\nNuestro equipo contactará a %s al %s para confirmar la cita del %s durante %s.",
			FormCancelled: "Solicitud cancelada. ¿En qué más puedo ayudarle hoy?",

			LanguageChanged: "Idioma cambiado. Los próximos mensajes aparecerán en español.",

			PlaceholderMerchantID: "Ingrese su ID de comercio...",
			PlaceholderOTP:        "Ingrese el código OTP...",
			PlaceholderFeedback:   "Escriba su opinión...",
			PlaceholderOption:     "Seleccione una opción arriba...",
			PlaceholderDefault:    "Escriba su pregunta aquí...",
		},
	}
}

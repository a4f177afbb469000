package i18n

import "github.com/gofiber/fiber/v2"

type Language string

const (
	LangEN Language = "en"
	LangAR Language = "ar"
)

// message catalog: key -> language -> text. English is the fallback.
var messages = map[string]map[Language]string{
	"error.not_found": {
		LangEN: "The requested record was not found",
		LangAR: "السجل المطلوب غير موجود",
	},
	"error.no_recipe": {
		LangEN: "No recipe configured for this product",
		LangAR: "لا توجد وصفة مسجلة لهذا المنتج",
	},
	"error.insufficient_stock": {
		LangEN: "Insufficient stock for the requested quantity",
		LangAR: "المخزون غير كافٍ للكمية المطلوبة",
	},
	"error.validation": {
		LangEN: "Please check the entered values",
		LangAR: "يرجى التحقق من القيم المدخلة",
	},
	"error.store": {
		LangEN: "An unexpected error occurred, please try again",
		LangAR: "حدث خطأ غير متوقع، يرجى المحاولة مرة أخرى",
	},
	"error.invalid_body": {
		LangEN: "Invalid request body",
		LangAR: "نص الطلب غير صالح",
	},
	"error.customer_name_required": {
		LangEN: "Please enter customer name",
		LangAR: "يرجى إدخال اسم العميل",
	},
	"error.positive_quantity_required": {
		LangEN: "Quantity must be greater than zero",
		LangAR: "يجب أن تكون الكمية أكبر من صفر",
	},
	"error.positive_price_required": {
		LangEN: "Price must be greater than zero",
		LangAR: "يجب أن يكون السعر أكبر من صفر",
	},
	"error.invalid_unit": {
		LangEN: "Invalid unit of measure",
		LangAR: "وحدة قياس غير صالحة",
	},
	"error.invalid_size": {
		LangEN: "Invalid product size",
		LangAR: "حجم منتج غير صالح",
	},
	"error.invalid_date": {
		LangEN: "Date must be in 'YYYY-MM-DD' format",
		LangAR: "يجب أن يكون التاريخ بصيغة 'YYYY-MM-DD'",
	},
	"error.wrong_password": {
		LangEN: "Incorrect password",
		LangAR: "كلمة المرور غير صحيحة",
	},
	"warning.balance_not_posted": {
		LangEN: "Sale recorded, but the customer balance could not be updated. Please adjust it manually.",
		LangAR: "تم تسجيل البيع، لكن تعذر تحديث رصيد العميل. يرجى تعديله يدويًا.",
	},
	"success.reset_done": {
		LangEN: "All business data has been reset",
		LangAR: "تمت إعادة تعيين جميع بيانات العمل",
	},
}

// FromCtx picks the display language for a request: X-Language header first,
// then the lang query parameter, defaulting to English.
func FromCtx(c *fiber.Ctx) Language {
	lang := c.Get("X-Language")
	if lang == "" {
		lang = c.Query("lang")
	}
	if Language(lang) == LangAR {
		return LangAR
	}
	return LangEN
}

// T resolves a message key for a language, falling back to English, then to
// the key itself so a missing entry is still visible.
func T(lang Language, key string) string {
	entry, ok := messages[key]
	if !ok {
		return key
	}
	if msg, ok := entry[lang]; ok && msg != "" {
		return msg
	}
	return entry[LangEN]
}

// M is the handler-side shortcut: localized message for the current request.
func M(c *fiber.Ctx, key string) string {
	return T(FromCtx(c), key)
}

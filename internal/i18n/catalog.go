package i18n

import "github.com/tikprofil/tikprofil-api/internal/constants"

var catalog = map[string]map[string]string{
	constants.LocaleTrTR: {
		"error.internal":               "Bir hata oluştu, lütfen daha sonra tekrar deneyin",
		"error.bad_request":            "Geçersiz istek",
		"error.unauthorized":           "Oturum açmanız gerekiyor",
		"error.forbidden":              "Bu işlem için yetkiniz yok",
		"error.not_found":              "Kayıt bulunamadı",
		"error.too_many_requests":      "Çok fazla istek, lütfen biraz bekleyin",
		"error.rate_limited":           "Çok fazla istek, lütfen %d saniye sonra tekrar deneyin",
		"error.rate_limit_unavailable": "İstek şu anda işlenemiyor, lütfen tekrar deneyin",
		"error.login_too_many":         "Çok fazla giriş denemesi, lütfen %d saniye sonra tekrar deneyin",
		"error.checkout_too_many":      "Çok fazla sipariş denemesi, lütfen %d saniye sonra tekrar deneyin",
		"error.jwt_secret_missing":     "Sunucu yapılandırma hatası",
		"error.token_invalid":          "Oturum geçersiz, lütfen tekrar giriş yapın",
		"error.token_revoked":          "Oturum sonlandırıldı, lütfen tekrar giriş yapın",
		"error.auth_header_missing":    "Yetkilendirme bilgisi eksik",
		"error.auth_header_invalid":    "Yetkilendirme bilgisi geçersiz",
		"error.login_failed":           "E-posta veya şifre hatalı",
		"error.account_disabled":       "Hesap devre dışı bırakılmış",
		"error.captcha_invalid":        "Doğrulama kodu hatalı",
		"error.captcha_required":       "Doğrulama kodu gerekli",
		"error.business_not_found":     "İşletme bulunamadı",
		"error.business_inactive":      "İşletme şu anda aktif değil",
		"error.orders_paused":          "İşletme şu anda sipariş almıyor",
		"error.order_not_found":        "Sipariş bulunamadı",
		"error.order_min_amount":       "Sipariş tutarı minimum tutarın altında",
		"error.order_total_mismatch":   "Sipariş tutarı doğrulanamadı, lütfen sepeti yenileyin",
		"error.order_empty":            "Sepet boş",
		"error.order_invalid_item":     "Sepetteki bir ürün artık mevcut değil",
		"error.order_invalid_status":   "Bu durum geçişine izin verilmiyor",
		"error.order_cancel_denied":    "Sipariş bu aşamada iptal edilemez",
		"error.delivery_not_available": "Bu teslimat türü kullanılamıyor",
		"error.payment_not_available":  "Bu ödeme yöntemi kullanılamıyor",
		"error.table_not_found":        "Masa bulunamadı",
		"error.coupon_invalid":         "Kupon kodu geçersiz",
		"error.coupon_not_found":       "Kupon kodu bulunamadı",
		"error.coupon_inactive":        "Kupon aktif değil",
		"error.coupon_not_started":     "Kupon henüz başlamadı",
		"error.coupon_expired":         "Kuponun süresi dolmuş",
		"error.coupon_usage_limit":     "Kupon kullanım limitine ulaşıldı",
		"error.coupon_per_user_limit":  "Bu kuponu kullanma hakkınız doldu",
		"error.coupon_min_amount":      "Kupon için minimum sepet tutarına ulaşılmadı",
		"error.coupon_scope_invalid":   "Kupon sepetinizdeki ürünler için geçerli değil",
		"error.coupon_first_order":     "Bu kupon yalnızca ilk sipariş için geçerli",
		"error.coupon_code_exists":     "Bu kupon kodu zaten kayıtlı",
		"error.category_not_found":     "Kategori bulunamadı",
		"error.product_not_found":      "Ürün bulunamadı",
		"error.email_exists":           "Bu e-posta adresi zaten kayıtlı",
		"error.slug_exists":            "Bu profil adresi zaten kullanılıyor",
	},
	constants.LocaleEnUS: {
		"error.internal":               "Something went wrong, please try again later",
		"error.bad_request":            "Invalid request",
		"error.unauthorized":           "Authentication required",
		"error.forbidden":              "You are not allowed to perform this action",
		"error.not_found":              "Record not found",
		"error.too_many_requests":      "Too many requests, please slow down",
		"error.rate_limited":           "Too many requests, please retry in %d seconds",
		"error.rate_limit_unavailable": "Request cannot be processed right now, please retry",
		"error.login_too_many":         "Too many login attempts, please retry in %d seconds",
		"error.checkout_too_many":      "Too many checkout attempts, please retry in %d seconds",
		"error.jwt_secret_missing":     "Server configuration error",
		"error.token_invalid":          "Session invalid, please sign in again",
		"error.token_revoked":          "Session revoked, please sign in again",
		"error.auth_header_missing":    "Missing authorization header",
		"error.auth_header_invalid":    "Invalid authorization header",
		"error.login_failed":           "Wrong email or password",
		"error.account_disabled":       "Account is disabled",
		"error.captcha_invalid":        "Captcha verification failed",
		"error.captcha_required":       "Captcha is required",
		"error.business_not_found":     "Business not found",
		"error.business_inactive":      "Business is not active",
		"error.orders_paused":          "Business is not accepting orders right now",
		"error.order_not_found":        "Order not found",
		"error.order_min_amount":       "Order total is below the minimum amount",
		"error.order_total_mismatch":   "Order total could not be verified, please refresh your cart",
		"error.order_empty":            "Cart is empty",
		"error.order_invalid_item":     "An item in your cart is no longer available",
		"error.order_invalid_status":   "Status transition not allowed",
		"error.order_cancel_denied":    "Order can no longer be cancelled",
		"error.delivery_not_available": "This delivery type is not available",
		"error.payment_not_available":  "This payment method is not available",
		"error.table_not_found":        "Table not found",
		"error.coupon_invalid":         "Coupon code is invalid",
		"error.coupon_not_found":       "Coupon code not found",
		"error.coupon_inactive":        "Coupon is not active",
		"error.coupon_not_started":     "Coupon is not valid yet",
		"error.coupon_expired":         "Coupon has expired",
		"error.coupon_usage_limit":     "Coupon usage limit reached",
		"error.coupon_per_user_limit":  "You have already used this coupon",
		"error.coupon_min_amount":      "Cart total is below the coupon minimum",
		"error.coupon_scope_invalid":   "Coupon does not apply to the items in your cart",
		"error.coupon_first_order":     "Coupon is valid for first orders only",
		"error.coupon_code_exists":     "Coupon code already exists",
		"error.category_not_found":     "Category not found",
		"error.product_not_found":      "Product not found",
		"error.email_exists":           "Email address already registered",
		"error.slug_exists":            "Profile address already taken",
	},
}

package constants

// Order status constants
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
	OrderStatusRejected  = "rejected"
)

// Status log actor constants
const (
	StatusActorSystem   = "system"
	StatusActorStaff    = "staff"
	StatusActorCustomer = "customer"
)

// Delivery type constants
const (
	DeliveryTypePickup   = "pickup"
	DeliveryTypeDelivery = "delivery"
	DeliveryTypeDineIn   = "dinein"
)

// Payment method constants
const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
)

// Coupon type constants
const (
	CouponTypeFixed        = "fixed"
	CouponTypePercentage   = "percentage"
	CouponTypeFreeDelivery = "free_delivery"
	CouponTypeBogo         = "bogo"
)

// Coupon scope constants
const (
	ScopeTypeAll      = "all"
	ScopeTypeCategory = "category"
	ScopeTypeProduct  = "product"
)

// Staff role constants
const (
	StaffRoleOwner = "owner"
	StaffRoleStaff = "staff"
)

// Business category constants
const (
	BusinessCategoryRestaurant = "restaurant"
	BusinessCategoryFastfood   = "fastfood"
	BusinessCategoryCoffee     = "coffee"
	BusinessCategoryHotel      = "hotel"
	BusinessCategoryClinic     = "clinic"
	BusinessCategorySalon      = "salon"
	BusinessCategoryRealEstate = "realestate"
	BusinessCategoryEcommerce  = "ecommerce"
)

// Queue constants
const (
	QueueDefault    = "default"
	TaskOrderNotify = "order:notify"
)

// Captcha provider constants
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// Currency default
const (
	SiteCurrencyDefault = "TRY"
)

// Locale constants
const (
	LocaleTrTR = "tr-TR"
	LocaleEnUS = "en-US"
)

// SupportedLocales lists site locales in fallback order.
var SupportedLocales = []string{LocaleTrTR, LocaleEnUS}

// Cache key prefix default
const (
	RedisPrefixDefault = "tp"
)

// OrderTotalTolerance is the maximum accepted drift between the
// client-submitted total and the server-side recomputation, in currency units.
const OrderTotalTolerance = "0.01"

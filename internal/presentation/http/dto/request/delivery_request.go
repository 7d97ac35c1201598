package request

// DeliveryForm is the multipart delivery confirmation. The photo travels in
// the "evidence" file field.
type DeliveryForm struct {
	PhysicalCheck     bool    `form:"physical_check"`
	ClientNotified    bool    `form:"client_notified"`
	OverrideConfirmed bool    `form:"override_confirmed"`
	Notes             *string `form:"notes"`
}

package email

import "fmt"

// BuildNewOrderBody builds the HTML body for the store-side new order
// notification.
func BuildNewOrderBody(orderID, customerName, itemSummary, orderLink string, total float64) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h1 style="font-size: 22px; border-bottom: 2px solid #333; padding-bottom: 10px;">New order received</h1>
	<p><strong>%s</strong> just placed an order.</p>
	<div style="background: #f8f9fa; padding: 15px; border-radius: 5px; margin: 20px 0;">
		<p style="margin: 0; font-size: 14px; color: #666;">Order number</p>
		<p style="margin: 5px 0 0 0; font-size: 18px; font-weight: bold; font-family: monospace;">%s</p>
	</div>
	<p>%s</p>
	<p style="font-size: 18px;"><strong>Total: %.2f</strong></p>
	<p><a href="%s" style="display: inline-block; background: #333; color: #fff; padding: 12px 24px; border-radius: 5px; text-decoration: none;">Open in admin console</a></p>
</body>
</html>`, customerName, orderID, itemSummary, total, orderLink)
}

// BuildStatusChangedBody builds the HTML body for the customer status
// update notification.
func BuildStatusChangedBody(orderID, newStatus, itemSummary, trackingLink string, total float64) string {
	tracking := ""
	if trackingLink != "" {
		tracking = fmt.Sprintf(`<p><a href="%s" style="display: inline-block; background: #333; color: #fff; padding: 12px 24px; border-radius: 5px; text-decoration: none;">Track your order</a></p>`, trackingLink)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h1 style="font-size: 22px; border-bottom: 2px solid #333; padding-bottom: 10px;">Your order is now %s</h1>
	<div style="background: #f8f9fa; padding: 15px; border-radius: 5px; margin: 20px 0;">
		<p style="margin: 0; font-size: 14px; color: #666;">Order number</p>
		<p style="margin: 5px 0 0 0; font-size: 18px; font-weight: bold; font-family: monospace;">%s</p>
	</div>
	<p>%s</p>
	<p style="font-size: 18px;"><strong>Total: %.2f</strong></p>
	%s
	<p style="color: #666; font-size: 14px;">Thank you for shopping with us.</p>
</body>
</html>`, newStatus, orderID, itemSummary, total, tracking)
}

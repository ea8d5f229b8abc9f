package models

func strPtr(s string) *string { return &s }

// DefaultTemplates are the stock email/SMS templates seeded on first boot.
func DefaultTemplates() []EmailTemplate {
	return []EmailTemplate{
		{
			Name:    "Acceptance Letter",
			Subject: "Welcome to {{camp_name}} - {{camper_first_name}} Has Been Accepted!",
			Body: `Dear {{parent_father_title}} and Mrs. {{parent_father_last_name}},

We are thrilled to inform you that {{camper_first_name}} {{camper_last_name}} has been accepted to {{camp_name}} for the upcoming summer!

We can't wait to have {{camper_first_name}} join us for The Ultimate Bein Hazmanim Experience.

To secure your spot, please submit your deposit by visiting your Parent Portal:
{{payment_link}}

If you have any questions, please don't hesitate to reach out.

Best regards,
{{camp_name}} Team
{{camp_email}}`,
			Trigger:      strPtr("status_accepted"),
			TemplateType: "email",
			IsActive:     true,
		},
		{
			Name:    "Payment Reminder",
			Subject: "Payment Reminder - {{amount_due}} Due for {{camper_first_name}}",
			Body: `Dear {{parent_father_title}} {{parent_father_last_name}},

This is a friendly reminder that you have a payment of {{amount_due}} due for {{camper_first_name}}'s enrollment at {{camp_name}}.

Due Date: {{due_date}}

You can make your payment easily through your Parent Portal:
{{payment_link}}

If you have already sent payment, please disregard this message.

Thank you,
{{camp_name}}`,
			Trigger:      strPtr("payment_reminder"),
			TemplateType: "email",
			IsActive:     true,
		},
		{
			Name:    "Payment Received - Full",
			Subject: "Payment Confirmed - {{camper_first_name}} is Fully Enrolled!",
			Body: `Dear {{parent_father_title}} and Mrs. {{parent_father_last_name}},

Great news! We have received your full payment for {{camper_first_name}} {{camper_last_name}}.

{{camper_first_name}} is now fully enrolled for this summer at {{camp_name}}!

We will be sending more information about camp preparations closer to the start date.

Thank you for choosing {{camp_name}}!

Best regards,
{{camp_name}} Team`,
			Trigger:      strPtr("status_paid_in_full"),
			TemplateType: "email",
			IsActive:     true,
		},
		{
			Name:         "SMS - Acceptance",
			Subject:      "",
			Body:         "{{camp_name}}: Great news! {{camper_first_name}} has been accepted! Visit your portal to complete enrollment: {{payment_link}}",
			Trigger:      strPtr("status_accepted"),
			TemplateType: "sms",
			IsActive:     true,
		},
		{
			Name:         "SMS - Payment Reminder",
			Subject:      "",
			Body:         "{{camp_name}} Reminder: {{amount_due}} due by {{due_date}} for {{camper_first_name}}. Pay now: {{payment_link}}",
			Trigger:      strPtr("payment_reminder"),
			TemplateType: "sms",
			IsActive:     true,
		},
	}
}

package seeds

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
)

// SeedArticles seeds the knowledge base with the default self-service
// articles. Existing articles with the same title are left untouched.
func SeedArticles(db *gorm.DB) error {
	articles := []models.ArticleModel{
		{
			Title:    "How to reset your password",
			Category: "Account Access",
			Content: "If you have forgotten your password, contact your administrator to have it reset.\n\n" +
				"1. Open a ticket in the **Account Access** category.\n" +
				"2. Include the username of the affected account.\n" +
				"3. An administrator will verify your identity and issue a temporary password.\n\n" +
				"Never share your password with anyone, including support staff.",
			Keywords: datatypes.JSON(`["password", "reset", "login", "locked out"]`),
		},
		{
			Title:    "Understanding ticket priorities",
			Category: "General",
			Content: "Choose a priority that reflects the business impact of your issue:\n\n" +
				"- **Low**: cosmetic problems or questions with no deadline.\n" +
				"- **Medium**: an inconvenience with a known workaround.\n" +
				"- **High**: a core function is degraded for you or your team.\n" +
				"- **Urgent**: a production outage or data loss in progress.\n\n" +
				"Tickets are triaged by priority first, then by age.",
			Keywords: datatypes.JSON(`["priority", "urgent", "triage", "sla"]`),
		},
		{
			Title:    "Attaching files to a ticket",
			Category: "General",
			Content: "Screenshots and log files help us resolve your issue faster.\n\n" +
				"You can attach up to **5 files** per ticket, each up to **5MB**. " +
				"Larger files should be shared through your team's file storage with a link in the ticket description.\n\n" +
				"Avoid attaching files that contain passwords or personal data.",
			Keywords: datatypes.JSON(`["attachment", "upload", "screenshot", "file size"]`),
		},
		{
			Title:    "Common billing questions",
			Category: "Billing",
			Content: "Invoices are issued on the first business day of each month.\n\n" +
				"If a charge looks wrong, open a ticket in the **Billing** category and include the invoice number. " +
				"Refunds for duplicate charges are processed within 5 business days.\n\n" +
				"For plan changes, note that upgrades apply immediately while downgrades take effect at the next billing cycle.",
			Keywords: datatypes.JSON(`["billing", "invoice", "refund", "payment"]`),
		},
		{
			Title:    "Requesting a new feature",
			Category: "Feature Request",
			Content: "We track feature requests through the same ticket queue as issues.\n\n" +
				"When filing a **Feature Request** ticket, describe the problem you are trying to solve rather than a specific implementation. " +
				"Include how often you hit the problem and how many people it affects. " +
				"Requests are reviewed monthly and you will see the ticket status change to *in progress* when work starts.",
			Keywords: datatypes.JSON(`["feature", "request", "enhancement", "roadmap"]`),
		},
		{
			Title:    "Troubleshooting connection problems",
			Category: "Technical Issue",
			Content: "Before opening a ticket, try these steps:\n\n" +
				"1. Reload the page with a hard refresh.\n" +
				"2. Check whether other sites on the same network load normally.\n" +
				"3. Try an incognito window to rule out browser extensions.\n\n" +
				"If the problem persists, open a **Technical Issue** ticket with the exact error message and the time it occurred.",
			Keywords: datatypes.JSON(`["connection", "network", "timeout", "error"]`),
		},
	}

	for _, article := range articles {
		if err := db.
			Where(models.ArticleModel{Title: article.Title}).
			FirstOrCreate(&article).Error; err != nil {
			return err
		}
	}

	return nil
}

// Package notification builds customer-facing email content for ticket
// status changes. The builder is pure: given the same input it always
// produces the same subject and HTML body, which lets tests enumerate the
// full status table of every workflow.
package notification

import (
	"fmt"
	"html"

	"devicedesk/internal/domain/workflow"
	"devicedesk/internal/shared/services/markdown"
	"devicedesk/internal/shared/utils"
)

// Input is everything the builder needs. Amounts are in the smallest
// currency unit; nil means not set.
type Input struct {
	Kind              workflow.Kind
	NewStatus         workflow.Status
	TenantName        string
	LogoURL           string
	FooterMarkdown    string
	CustomerName      string
	DeviceDescription string
	TicketNumber      string
	Currency          string
	PrimaryAmount     *int64
	SecondaryAmount   *int64
}

// Content is a ready-to-send email payload.
type Content struct {
	Subject string
	HTML    string
}

type amountRef int

const (
	amountNone amountRef = iota
	amountPrimary
	amountSecondary
)

type statusEntry struct {
	message string
	amount  amountRef
}

// statusMessages is the fixed per-workflow table of customer-facing status
// messages. Statuses missing from a kind's table fall back to a generic
// "status updated" message.
var statusMessages = map[workflow.Kind]map[workflow.Status]statusEntry{
	workflow.KindRepair: {
		workflow.StatusSubmitted:       {message: "We have received your repair request"},
		workflow.StatusReceived:        {message: "Your device has arrived at our shop"},
		workflow.StatusDiagnosed:       {message: "We have diagnosed your device", amount: amountPrimary},
		workflow.StatusInProgress:      {message: "Your repair is in progress"},
		workflow.StatusPartsOrdered:    {message: "We are waiting for replacement parts for your repair"},
		workflow.StatusReadyForTesting: {message: "Your device is being tested"},
		workflow.StatusCompleted:       {message: "Your repair is complete", amount: amountSecondary},
		workflow.StatusShipped:         {message: "Your device is on its way back to you"},
		workflow.StatusCancelled:       {message: "Your repair has been cancelled"},
	},
	workflow.KindBuyback: {
		workflow.StatusSubmitted:      {message: "We have received your buyback request"},
		workflow.StatusReceived:       {message: "Your device has arrived for evaluation"},
		workflow.StatusEvaluated:      {message: "We have evaluated your device", amount: amountPrimary},
		workflow.StatusPendingPayment: {message: "Your payment is being processed"},
		workflow.StatusCompleted:      {message: "Your buyback is complete"},
		workflow.StatusRejected:       {message: "We are unable to make an offer for your device"},
		workflow.StatusReturned:       {message: "Your device has been returned to you"},
	},
	workflow.KindRefurbishing: {
		workflow.StatusSubmitted:  {message: "We have received your refurbishing request"},
		workflow.StatusReceived:   {message: "Your device has arrived at our shop"},
		workflow.StatusGraded:     {message: "Your device has been graded", amount: amountPrimary},
		workflow.StatusInProgress: {message: "Refurbishing of your device is in progress"},
		workflow.StatusCompleted:  {message: "Refurbishing of your device is complete"},
		workflow.StatusShipped:    {message: "Your device is on its way back to you"},
		workflow.StatusCancelled:  {message: "Your refurbishing order has been cancelled"},
	},
}

type Builder struct {
	markdown markdown.Service
}

func NewBuilder(markdownService markdown.Service) *Builder {
	return &Builder{markdown: markdownService}
}

// Build maps the input to a subject and HTML body using the fixed status
// message tables. No network or storage access.
func (b *Builder) Build(in Input) Content {
	entry, ok := statusMessages[in.Kind][in.NewStatus]
	if !ok {
		entry = statusEntry{
			message: fmt.Sprintf("The status of your ticket has been updated to %s", in.NewStatus.Label()),
		}
	}

	subject := fmt.Sprintf("%s - %s", in.TenantName, entry.message)

	amountLine := b.amountLine(in, entry.amount)
	footer := b.footerHTML(in.FooterMarkdown)

	var logo string
	if in.LogoURL != "" {
		logo = fmt.Sprintf(`<img src="%s" alt="%s" style="max-height:60px"/>`,
			html.EscapeString(in.LogoURL), html.EscapeString(in.TenantName))
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			%s
			<p>Hi %s,</p>
			<p>%s.</p>
			<p>Device: %s<br/>Ticket: %s</p>
			%s
			<p>Thank you,<br/>%s</p>
			%s
		</body>
		</html>
	`,
		logo,
		html.EscapeString(in.CustomerName),
		html.EscapeString(entry.message),
		html.EscapeString(in.DeviceDescription),
		html.EscapeString(in.TicketNumber),
		amountLine,
		html.EscapeString(in.TenantName),
		footer,
	)

	return Content{Subject: subject, HTML: body}
}

func (b *Builder) amountLine(in Input, ref amountRef) string {
	def := workflow.ForKind(in.Kind)

	var cents *int64
	var label string
	switch ref {
	case amountPrimary:
		cents, label = in.PrimaryAmount, def.PrimaryAmountLabel
	case amountSecondary:
		cents, label = in.SecondaryAmount, def.SecondaryAmountLabel
		// Repair tickets may complete without a recorded actual cost.
		if cents == nil {
			cents, label = in.PrimaryAmount, def.PrimaryAmountLabel
		}
	default:
		return ""
	}

	if cents == nil || label == "" {
		return ""
	}

	return fmt.Sprintf("<p>%s: <strong>%s</strong></p>",
		html.EscapeString(label), utils.FormatAmount(*cents, in.Currency))
}

func (b *Builder) footerHTML(footerMarkdown string) string {
	if footerMarkdown == "" {
		return ""
	}
	rendered, err := b.markdown.ToHTMLSanitized(footerMarkdown)
	if err != nil {
		// Footer is decoration; a malformed one never blocks the email.
		return ""
	}
	return fmt.Sprintf(`<hr/><div style="color:#777;font-size:12px">%s</div>`, rendered)
}

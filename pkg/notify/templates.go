package notify

import "html/template"

// Shared email-safe styling, kept deliberately simple: a white card on a grey
// page with the brand header.
const baseStyles = `
  body{margin:0;background:#f6f7fb;font-family:Segoe UI,Arial,Helvetica,sans-serif}
  .wrap{max-width:680px;margin:0 auto;background:#fff;border-radius:14px;overflow:hidden;border:1px solid #eef0f6}
  .hdr{background:#1a3cff;color:#fff;padding:22px 26px}
  .brand{font-size:18px;font-weight:800;letter-spacing:.3px}
  .title{margin-top:6px;font-size:14px;opacity:.9}
  .cnt{padding:26px;color:#111827}
  .row{margin:8px 0}
  .lbl{color:#6b7280;display:inline-block;min-width:120px}
  .val{color:#111827;font-weight:600}
  .box{background:#fafbff;border:1px solid #eef0f6;border-radius:12px;padding:14px;margin-top:8px}
  .highlight{background:#fef3c7;border-radius:12px;padding:14px;margin-top:12px;color:#92400e}
  .divider{height:1px;background:#eef0f6;margin:18px 0}
  .muted{color:#6b7280}
  .ftr{padding:18px 26px;color:#6b7280;font-size:12px;text-align:center}
`

type bookingEmailData struct {
	Brand          string
	Title          string
	Intro          string
	Name           string
	Reference      string
	SpaceName      string
	SpaceType      string
	Date           string
	Time           string
	Duration       int
	Price          string
	Status         string
	PaymentStatus  string
	PaymentPending bool
	PaymentNumber  string
	Reason         string
	SupportPhone   string
	SupportEmail   string
	Year           int
}

type contactEmailData struct {
	Brand          string
	Title          string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Interest       string
	Message        string
	SubmittedAt    string
	SupportPhone   string
	SupportEmail   string
	SupportAddress string
	Year           int
}

var bookingTemplate = template.Must(template.New("booking").Parse(`<!doctype html><html><head><meta charset="utf-8"><style>` + baseStyles + `</style></head><body>
  <div class="wrap">
    <div class="hdr">
      <div class="brand">{{.Brand}}</div>
      <div class="title">{{.Title}}</div>
    </div>
    <div class="cnt">
      <p style="margin:0 0 10px 0">Hi <strong>{{.Name}}</strong>,</p>
      <p style="margin:0 0 12px 0">{{.Intro}}</p>

      <div class="box">
        <div class="row"><span class="lbl">Booking ID</span><span class="val">{{.Reference}}</span></div>
        <div class="row"><span class="lbl">Space</span><span class="val">{{.SpaceName}} ({{.SpaceType}})</span></div>
        <div class="row"><span class="lbl">Date</span><span class="val">{{.Date}}</span></div>
        <div class="row"><span class="lbl">Time</span><span class="val">{{.Time}} ({{.Duration}} hours)</span></div>
        <div class="row"><span class="lbl">Price</span><span class="val">{{.Price}}</span></div>
        <div class="row"><span class="lbl">Status</span><span class="val">{{.Status}}</span></div>
        <div class="row"><span class="lbl">Payment</span><span class="val">{{.PaymentStatus}}</span></div>
        {{if .Reason}}<div class="row"><span class="lbl">Reason</span><span class="val">{{.Reason}}</span></div>{{end}}
      </div>

      {{if .PaymentPending}}
      <div class="highlight">
        <h4 style="margin:0 0 8px 0">Payment Still Required</h4>
        <p style="margin:0">
          <strong>Mobile Money:</strong> {{.PaymentNumber}}<br>
          <strong>Amount:</strong> {{.Price}}<br>
          <strong>Reference:</strong> {{.Reference}}
        </p>
      </div>
      {{end}}

      <div class="divider"></div>
      <p class="muted" style="margin:0 0 6px 0"><strong>Contact Information</strong></p>
      <div class="row"><span class="lbl">Phone</span><span class="val">{{.SupportPhone}}</span></div>
      <div class="row"><span class="lbl">Email</span><span class="val">{{.SupportEmail}}</span></div>
    </div>
    <div class="ftr">&copy; {{.Year}} {{.Brand}}. All rights reserved.</div>
  </div>
</body></html>`))

var contactAdminTemplate = template.Must(template.New("contact_admin").Parse(`<!doctype html><html><head><meta charset="utf-8"><style>` + baseStyles + `</style></head><body>
  <div class="wrap">
    <div class="hdr">
      <div class="brand">{{.Brand}}</div>
      <div class="title">New Contact &middot; {{.Interest}}</div>
    </div>
    <div class="cnt">
      <div class="row"><span class="lbl">Name</span><span class="val">{{.FirstName}} {{.LastName}}</span></div>
      <div class="row"><span class="lbl">Email</span><span class="val">{{.Email}}</span></div>
      <div class="row"><span class="lbl">Phone</span><span class="val">{{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}</span></div>
      <div class="row"><span class="lbl">Interest</span><span class="val">{{.Interest}}</span></div>

      <div class="divider"></div>
      <span class="lbl">Message</span>
      <div class="box" style="white-space:pre-wrap;line-height:1.6">{{.Message}}</div>

      <div class="divider"></div>
      <div class="muted">Submitted: {{.SubmittedAt}}</div>
    </div>
    <div class="ftr">You&rsquo;re receiving this because someone submitted the contact form on {{.Brand}}.</div>
  </div>
</body></html>`))

var contactUserTemplate = template.Must(template.New("contact_user").Parse(`<!doctype html><html><head><meta charset="utf-8"><style>` + baseStyles + `</style></head><body>
  <div class="wrap">
    <div class="hdr">
      <div class="brand">{{.Brand}}</div>
      <div class="title">Thanks for contacting us</div>
    </div>
    <div class="cnt">
      <p style="margin:0 0 10px 0">Hi <strong>{{.FirstName}}</strong>,</p>
      <p style="margin:0 0 12px 0">
        Thanks for reaching out! We&rsquo;ve received your inquiry about <strong>{{.Interest}}</strong>.
        Our team will get back to you within 24 hours.
      </p>

      <div class="divider"></div>
      <p class="muted" style="margin:0 0 6px 0"><strong>Contact Information</strong></p>
      <div class="row"><span class="lbl">Phone</span><span class="val">{{.SupportPhone}}</span></div>
      <div class="row"><span class="lbl">Email</span><span class="val">{{.SupportEmail}}</span></div>
      <div class="row"><span class="lbl">Address</span><span class="val">{{.SupportAddress}}</span></div>
      <div class="divider"></div>
      <div class="muted">Submitted: {{.SubmittedAt}}</div>
    </div>
    <div class="ftr">&copy; {{.Year}} {{.Brand}}. All rights reserved.</div>
  </div>
</body></html>`))

// Package invitation assembles full HTML documents for public invitation
// pages. It picks the rendering strategy from the event payload: a set
// template id renders through the template registry, otherwise the enabled
// blocks render in order.
package invitation

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/Sumatoha/shaq-web/internal/compose"
	"github.com/Sumatoha/shaq-web/internal/model"
	"github.com/Sumatoha/shaq-web/internal/render"
	"github.com/Sumatoha/shaq-web/internal/render/blocks"
	"github.com/Sumatoha/shaq-web/internal/render/templates"
	"github.com/Sumatoha/shaq-web/internal/theme"
)

type Renderer struct {
	logger *slog.Logger
}

func NewRenderer(logger *slog.Logger) *Renderer {
	return &Renderer{logger: logger}
}

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="ru">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="preconnect" href="https://fonts.googleapis.com">
<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
{{- range .FontLinks}}
<link rel="stylesheet" href="{{.}}">
{{- end}}
<style>{{.BaseCSS}}</style>
</head>
<body style="{{.ThemeStyle}}">
{{- if .Intro}}
<div class="intro-overlay" data-intro style="background-color: {{.Theme.Colors.Primary}};">
  <div class="intro-content">
    <p class="intro-overline" style="color: {{.Theme.Colors.TextMuted}};">Приглашение</p>
{{- if .GuestName}}
    <h1 class="intro-guest" style="font-family: '{{.Theme.Fonts.Heading}}'; font-weight: {{.Theme.Fonts.HeadingWeight}}; color: {{.Theme.Colors.Text}};">Құрметті {{.GuestName}}!</h1>
{{- end}}
    <div class="intro-envelope" style="background-color: {{.Theme.Colors.Secondary}}; border: 2px solid {{.Theme.Colors.Accent}};">
      <div class="intro-flap" style="background: linear-gradient(135deg, {{.Theme.Colors.Accent}}40 50%, transparent 50%);"></div>
      <div class="intro-seal" style="background-color: {{.Theme.Colors.Accent}};"><span>&#9829;</span></div>
    </div>
    <button class="intro-open" data-intro-open style="background-color: {{.Theme.Colors.Accent}}; color: {{.Theme.Colors.Secondary}};">Открыть приглашение</button>
  </div>
</div>
{{- end}}
<main class="invitation-page">
{{.Body}}
</main>
<script>{{.Script}}</script>
</body>
</html>
`))

// Page renders the invitation document for the getPublic payload. Blocks
// that fail to render are logged and skipped so one bad block does not take
// the whole page down.
func (r *Renderer) Page(inv model.PublicEventResponse, ctx render.Context, state blocks.State) ([]byte, error) {
	cfg := inv.Theme

	var body template.HTML
	intro := false

	if inv.Template != "" {
		html, err := templates.Render(inv.Template, inv.Data, cfg, ctx, state)
		if err != nil {
			return nil, fmt.Errorf("render template %s: %w", inv.Template, err)
		}
		body = html
	} else {
		intro = !ctx.IsPreview && compose.HasEnabledIntro(inv.Blocks)
		var buf bytes.Buffer
		for _, block := range compose.Enabled(inv.Blocks) {
			if block.Type == model.BlockIntro {
				continue
			}
			html, err := blocks.Render(block, inv.Data, cfg, ctx, state)
			if err != nil {
				r.logger.Error("block render failed",
					"slug", inv.Slug,
					"block", string(block.Type),
					"error", err)
				continue
			}
			buf.WriteString(string(html))
		}
		body = template.HTML(buf.String())
	}

	title := "Приглашение | Shaq"
	if inv.Data.Names.Person1 != "" {
		title = "Приглашение от " + inv.Data.Names.Combined() + " | Shaq"
	}

	var out bytes.Buffer
	err := pageTmpl.Execute(&out, struct {
		Title      string
		FontLinks  []string
		BaseCSS    template.CSS
		ThemeStyle template.CSS
		Theme      model.ThemeConfig
		Intro      bool
		GuestName  string
		Body       template.HTML
		Script     template.JS
	}{
		Title:      title,
		FontLinks:  theme.FontLinks(cfg),
		BaseCSS:    baseCSS,
		ThemeStyle: template.CSS(theme.InlineStyle(cfg)),
		Theme:      cfg,
		Intro:      intro,
		GuestName:  ctx.GuestName,
		Body:       body,
		Script:     pageScript,
	})
	if err != nil {
		return nil, fmt.Errorf("render page %s: %w", inv.Slug, err)
	}
	return out.Bytes(), nil
}

// GuestPage renders the personalized document, carrying the guest name and
// table number into the block context.
func (r *Renderer) GuestPage(inv model.PublicGuestEventResponse, guestSlug string, preview bool, state blocks.State) ([]byte, error) {
	ctx := render.Context{
		GuestName:   inv.GuestName,
		EventSlug:   inv.Slug,
		GuestSlug:   guestSlug,
		TableNumber: inv.TableNumber,
		IsPreview:   preview,
	}
	return r.Page(inv.PublicEventResponse, ctx, state)
}

// Structural rules only. Palette and typography arrive inline from the
// theme so the editor's color overrides need no stylesheet rebuild.
const baseCSS = template.CSS(`
*{margin:0;padding:0;box-sizing:border-box}
body{min-height:100vh;font-family:var(--font-body),sans-serif;background-color:var(--color-primary);color:var(--color-text)}
.invitation-page section{padding:80px 24px;text-align:center;position:relative}
.section-title{font-size:clamp(1.6rem,4vw,2.4rem);margin-bottom:32px}
.block-hero{min-height:100vh;display:flex;align-items:center;justify-content:center;flex-direction:column}
.hero-names{font-size:clamp(2.4rem,8vw,4.5rem);line-height:1.2}
.hero-divider{width:80px;height:2px;margin:24px auto}
.corner-ornament{position:absolute;width:64px;height:64px;border-style:solid;border-width:0}
.corner-ornament.top-left{top:24px;left:24px;border-top-width:1px;border-left-width:1px}
.corner-ornament.top-right{top:24px;right:24px;border-top-width:1px;border-right-width:1px}
.corner-ornament.bottom-left{bottom:24px;left:24px;border-bottom-width:1px;border-left-width:1px}
.corner-ornament.bottom-right{bottom:24px;right:24px;border-bottom-width:1px;border-right-width:1px}
.scroll-indicator{position:absolute;bottom:32px;left:50%;transform:translateX(-50%);width:24px;height:40px;border:1px solid;border-radius:12px}
.scroll-indicator span{display:block;width:2px;height:8px;margin:6px auto;animation:scroll-drop 2s ease-in-out infinite}
@keyframes scroll-drop{0%{transform:translateY(0);opacity:1}100%{transform:translateY(14px);opacity:0}}
.greeting-divider{width:60px;height:1px;margin:24px auto}
.detail-card{padding:32px 24px;margin:0 auto 24px;max-width:420px;border-radius:var(--border-radius)}
.detail-card.card-bordered{border:1px solid}
.detail-card.card-elevated{box-shadow:0 8px 24px rgba(0,0,0,0.08)}
.countdown-grid{display:grid;grid-template-columns:repeat(4,1fr);gap:12px;max-width:480px;margin:0 auto}
.countdown-unit{padding:20px 8px;border-radius:var(--border-radius)}
.countdown-unit.boxed{border:1px solid}
.countdown-number{display:block;font-size:clamp(1.8rem,5vw,2.6rem);line-height:1.1}
.countdown-number.large{font-size:clamp(2.4rem,7vw,3.4rem)}
.countdown-label{font-size:0.7rem;text-transform:uppercase;letter-spacing:2px}
.timeline{max-width:480px;margin:0 auto;text-align:left}
.timeline-item{padding:0 0 32px 24px;border-left:1px solid var(--color-accent-light);position:relative}
.timeline-item:last-child{padding-bottom:0}
.gallery-grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(160px,1fr));gap:12px;max-width:680px;margin:0 auto}
.gallery-item img{width:100%;height:100%;object-fit:cover;border-radius:var(--border-radius)}
.map-embed{max-width:680px;margin:32px auto 0;aspect-ratio:16/9}
.map-embed iframe{width:100%;height:100%;border:none;border-radius:var(--border-radius)}
.location-actions{display:flex;gap:12px;justify-content:center;margin-top:24px;flex-wrap:wrap}
.location-btn{padding:12px 28px;border-radius:var(--border-radius);text-decoration:none;font-size:0.85rem}
.location-btn.outline{border:1px solid;background:transparent}
.location-btn[aria-disabled="true"]{opacity:0.5;cursor:default}
.rsvp-form{max-width:420px;margin:0 auto;text-align:left}
.form-label{display:block;font-size:0.75rem;text-transform:uppercase;letter-spacing:2px;margin:20px 0 8px}
.form-input,.form-select,.form-textarea{width:100%;padding:12px 14px;border:1px solid;border-radius:var(--border-radius);background:transparent;font-size:1rem}
.rsvp-buttons{display:grid;grid-template-columns:1fr 1fr;gap:12px;margin-top:28px}
.rsvp-btn{padding:14px 20px;border:1px solid transparent;border-radius:var(--border-radius);font-size:0.85rem;letter-spacing:1px;cursor:pointer}
.rsvp-btn.decline{background:transparent;border-style:solid}
.rsvp-btn[disabled]{opacity:0.5;cursor:default}
.rsvp-result{padding:24px 0}
.rsvp-check{width:56px;height:56px;margin:0 auto 20px;border-radius:50%}
.block-footer{padding-bottom:48px}
.footer-attribution{font-size:0.75rem;margin-top:24px}
.footer-attribution a{text-decoration:none}
.intro-overlay{position:fixed;inset:0;z-index:1000;display:flex;align-items:center;justify-content:center;padding:32px}
.intro-content{text-align:center}
.intro-overline{font-size:0.75rem;letter-spacing:5px;text-transform:uppercase;opacity:0.6;margin-bottom:24px}
.intro-guest{font-size:clamp(1.4rem,4vw,1.9rem);margin-bottom:24px}
.intro-envelope{width:128px;height:160px;margin:0 auto 32px;border-radius:8px;position:relative;overflow:hidden}
.intro-flap{position:absolute;top:0;left:0;right:0;height:50%}
.intro-seal{position:absolute;top:50%;left:50%;transform:translate(-50%,-50%);width:32px;height:32px;border-radius:50%;display:flex;align-items:center;justify-content:center;color:#fff;font-size:0.85rem}
.intro-open{padding:12px 32px;border:none;border-radius:999px;font-size:1rem;cursor:pointer;transition:transform var(--animation-duration) ease}
.intro-open:hover{transform:scale(1.05)}
.reveal{opacity:0;transform:translateY(40px);transition:opacity 0.8s ease,transform 0.8s ease}
.reveal.visible{opacity:1;transform:translateY(0)}
@media (max-width:480px){.invitation-page section{padding:64px 16px}.countdown-grid{gap:8px}.rsvp-buttons{grid-template-columns:1fr}}
`)

// The envelope dismiss, the one-second countdown tick and the one-shot
// scroll reveals all run client-side off data attributes.
const pageScript = template.JS(`(function(){
var intro=document.querySelector('[data-intro]');
if(intro){
  var open=intro.querySelector('[data-intro-open]')||intro;
  open.addEventListener('click',function(){intro.remove();});
}
function tick(el){
  var date=el.getAttribute('data-countdown-date').split('-');
  var time=(el.getAttribute('data-countdown-time')||'12:00').split(':');
  if(date.length!==3)return;
  var target=new Date(+date[0],+date[1]-1,+date[2],+time[0]||12,+time[1]||0);
  if(isNaN(target.getTime()))return;
  var nums=el.querySelectorAll('.countdown-number');
  if(nums.length<4)return;
  function pad(n){return String(n).padStart(2,'0');}
  function step(){
    var delta=target.getTime()-Date.now();
    if(delta<=0){clearInterval(h);return;}
    nums[0].textContent=String(Math.floor(delta/86400000));
    nums[1].textContent=pad(Math.floor(delta/3600000)%24);
    nums[2].textContent=pad(Math.floor(delta/60000)%60);
    nums[3].textContent=pad(Math.floor(delta/1000)%60);
  }
  var h=setInterval(step,1000);
  step();
}
document.querySelectorAll('[data-countdown-date]').forEach(tick);
if('IntersectionObserver' in window){
  var io=new IntersectionObserver(function(entries){
    entries.forEach(function(e){
      if(e.isIntersecting){e.target.classList.add('visible');io.unobserve(e.target);}
    });
  },{threshold:0.15});
  document.querySelectorAll('[data-reveal]').forEach(function(el){io.observe(el);});
}
})();`)

package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/Sumatoha/shaq-web/internal/countdown"
	"github.com/Sumatoha/shaq-web/internal/model"
	"github.com/Sumatoha/shaq-web/internal/render"
	"github.com/Sumatoha/shaq-web/internal/render/blocks"
)

const (
	classicDefaultKz = "Біздің өмірімізде ұмытылмас сәт орын алғалы отыр. Бақытымызды бөлісуге сізді шақырамыз!"
	classicDefaultRu = "В нашей жизни наступает незабываемый момент. Мы будем рады разделить наше счастье вместе с вами!"
)

var classicTmpl = template.Must(template.New("classic-elegant").Funcs(template.FuncMap{
	"pad2": func(n int) string { return fmt.Sprintf("%02d", n) },
	"itoa": strconv.Itoa,
}).Parse(`{{- if .ShowIntro}}
<div class="envelope-intro" data-intro>
  <div class="envelope-container">
    <svg class="envelope-icon" viewBox="0 0 120 120" fill="none">
      <rect x="10" y="30" width="100" height="70" rx="4" stroke="{{.Accent}}" stroke-width="1.5" fill="none"/>
      <path d="M10 30 L60 72 L110 30" stroke="{{.Accent}}" stroke-width="1.5" fill="none"/>
      <path d="M10 100 L45 65" stroke="{{.Accent}}" stroke-width="1" opacity="0.4"/>
      <path d="M110 100 L75 65" stroke="{{.Accent}}" stroke-width="1" opacity="0.4"/>
      <path d="M60 45 L67 55 L60 65 L53 55Z" stroke="{{.Accent}}" stroke-width="1" fill="none" opacity="0.6"/>
      <circle cx="60" cy="55" r="3" fill="{{.Accent}}" opacity="0.4"/>
    </svg>
    <div class="envelope-text">Откройте приглашение</div>
  </div>
</div>
{{- end}}
<div class="invitation">
  <section class="hero">
    <div class="hero-border">
{{- range .Corners}}
      <svg class="ornament-corner {{.}}" viewBox="0 0 120 120" fill="none">
        <path d="M0 60 Q30 60 30 30 Q30 0 60 0" stroke="{{$.Accent}}" stroke-width="1.5" fill="none"/>
        <path d="M0 40 Q20 40 20 20 Q20 0 40 0" stroke="{{$.Accent}}" stroke-width="1" fill="none"/>
        <circle cx="30" cy="30" r="3" fill="{{$.Accent}}"/>
        <path d="M15 15 L22 22 M38 0 L38 12 M0 38 L12 38" stroke="{{$.Accent}}" stroke-width="0.8"/>
      </svg>
{{- end}}
    </div>
    <div class="section-inner">
      <div class="hero-overline">Приглашение на торжество</div>
      <h1 class="hero-names">{{.Person1}}{{if .Person2}}<span class="amp">и</span>{{.Person2}}{{end}}</h1>
      <div class="hero-date-line">
        <span class="line"></span>
        <span class="hero-date">{{.DateText}}</span>
        <span class="line"></span>
      </div>
    </div>
    <div class="scroll-hint">
      <span>листайте</span>
      <div class="scroll-line"></div>
    </div>
  </section>

  <section class="greeting">
    <div class="section-inner">
{{- template "divider" $}}
{{- if .GuestName}}
      <div class="guest-name-slot">Құрметті {{.GuestName}}</div>
{{- end}}
      <p class="greeting-text">{{.GreetingKz}}<br><br>{{.GreetingRu}}</p>
    </div>
  </section>

  <section class="details">
    <div class="section-inner">
      <div class="section-label">Детали торжества</div>
{{- template "divider" $}}
      <div class="details-grid">
        <div class="detail-card reveal" data-reveal>
          <svg class="detail-icon" viewBox="0 0 36 36" fill="none">
            <rect x="4" y="8" width="28" height="24" rx="3" stroke="currentColor" stroke-width="1.5"/>
            <line x1="4" y1="16" x2="32" y2="16" stroke="currentColor" stroke-width="1.5"/>
            <line x1="12" y1="4" x2="12" y2="12" stroke="currentColor" stroke-width="1.5" stroke-linecap="round"/>
            <line x1="24" y1="4" x2="24" y2="12" stroke="currentColor" stroke-width="1.5" stroke-linecap="round"/>
            <circle cx="18" cy="24" r="2" fill="currentColor"/>
          </svg>
          <div class="detail-title">Дата</div>
          <div class="detail-info"><strong>{{.DateText}}</strong>{{if .GatheringTime}}Сбор гостей в {{.GatheringTime}}{{end}}</div>
        </div>
        <div class="detail-card reveal" data-reveal>
          <svg class="detail-icon" viewBox="0 0 36 36" fill="none">
            <circle cx="18" cy="18" r="14" stroke="currentColor" stroke-width="1.5"/>
            <line x1="18" y1="10" x2="18" y2="18" stroke="currentColor" stroke-width="1.5" stroke-linecap="round"/>
            <line x1="18" y1="18" x2="24" y2="22" stroke="currentColor" stroke-width="1.5" stroke-linecap="round"/>
            <circle cx="18" cy="18" r="2" fill="currentColor"/>
          </svg>
          <div class="detail-title">Время</div>
          <div class="detail-info"><strong>Начало в {{.TimeText}}</strong></div>
        </div>
        <div class="detail-card reveal" data-reveal>
          <svg class="detail-icon" viewBox="0 0 36 36" fill="none">
            <path d="M18 3C12 3 6 8 6 15C6 24 18 33 18 33C18 33 30 24 30 15C30 8 24 3 18 3Z" stroke="currentColor" stroke-width="1.5" fill="none"/>
            <circle cx="18" cy="15" r="5" stroke="currentColor" stroke-width="1.5"/>
          </svg>
          <div class="detail-title">Место</div>
          <div class="detail-info"><strong>{{.VenueName}}</strong>{{.VenueAddress}}</div>
        </div>
{{- if .DressCode}}
        <div class="detail-card reveal" data-reveal>
          <svg class="detail-icon" viewBox="0 0 36 36" fill="none">
            <path d="M6 28 L18 6 L30 28Z" stroke="currentColor" stroke-width="1.5" fill="none" stroke-linejoin="round"/>
            <line x1="12" y1="28" x2="24" y2="28" stroke="currentColor" stroke-width="1.5"/>
            <circle cx="18" cy="18" r="3" stroke="currentColor" stroke-width="1"/>
          </svg>
          <div class="detail-title">Дресс-код</div>
          <div class="detail-info"><strong>{{.DressCode}}</strong></div>
        </div>
{{- end}}
      </div>
    </div>
  </section>

  <section class="countdown-section"{{if .Live}} data-countdown-date="{{.Date}}" data-countdown-time="{{.Time}}"{{end}}>
    <div class="section-inner">
      <div class="section-label">До торжества осталось</div>
      <div class="countdown-grid">
        <div class="countdown-item"><div class="countdown-number" data-unit="days">{{itoa .Left.Days}}</div><div class="countdown-label">дней</div></div>
        <div class="countdown-item"><div class="countdown-number" data-unit="hours">{{pad2 .Left.Hours}}</div><div class="countdown-label">часов</div></div>
        <div class="countdown-item"><div class="countdown-number" data-unit="minutes">{{pad2 .Left.Minutes}}</div><div class="countdown-label">минут</div></div>
        <div class="countdown-item"><div class="countdown-number" data-unit="seconds">{{pad2 .Left.Seconds}}</div><div class="countdown-label">секунд</div></div>
      </div>
    </div>
  </section>

{{- if .Program}}
  <section class="program">
    <div class="section-inner">
      <div class="section-label">Программа вечера</div>
{{- template "divider" $}}
      <div class="timeline">
{{- range .Program}}
        <div class="timeline-item reveal" data-reveal>
          <div class="timeline-time">{{.Time}}</div>
          <div class="timeline-title">{{.Title}}</div>
{{- if .Desc}}
          <div class="timeline-desc">{{.Desc}}</div>
{{- end}}
        </div>
{{- end}}
      </div>
    </div>
  </section>
{{- end}}

{{- if .HasVenue}}
  <section class="location">
    <div class="section-inner">
      <div class="section-label">Место проведения</div>
      <div class="detail-title">{{.VenueName}}</div>
      <p class="location-address">{{.VenueAddress}}</p>
{{- if .MapEmbed}}
      <div class="map-wrapper">
        <iframe src="{{.MapEmbed}}" loading="lazy" referrerpolicy="no-referrer-when-downgrade"></iframe>
        <div class="map-overlay"></div>
      </div>
{{- end}}
      <a href="{{.RouteURL}}" target="_blank" rel="noopener noreferrer" class="location-btn">Построить маршрут</a>
    </div>
  </section>
{{- end}}

  <section class="rsvp">
    <div class="section-inner">
      <div class="section-label">Подтверждение</div>
      <h2 class="rsvp-title">Ждём вашего ответа</h2>
{{- if .Deadline}}
      <p class="rsvp-subtitle">Пожалуйста, подтвердите ваше присутствие до {{.Deadline}}</p>
{{- end}}
{{- if .TableNumber}}
      <p class="rsvp-table">Ваш стол: {{.TableNumber}}</p>
{{- end}}
{{- if eq .State "form"}}
      <form class="rsvp-form" method="post"{{if .Action}} action="{{.Action}}"{{end}}>
        <div class="form-group">
          <label class="form-label">Ваше имя</label>
          <input type="text" class="form-input" name="name" placeholder="Введите ваше полное имя" value="{{.GuestName}}">
        </div>
        <div class="form-group">
          <label class="form-label">Количество гостей</label>
          <select class="form-select" name="guestCount">
{{- range .Counts}}
            <option value="{{.N}}"{{if .Selected}} selected{{end}}>{{.N}} {{.Word}}</option>
{{- end}}
          </select>
        </div>
        <div class="form-group">
          <label class="form-label">Пожелания</label>
          <textarea class="form-textarea" name="wishes" placeholder="Особые пожелания, аллергии, предпочтения..."></textarea>
        </div>
        <div class="rsvp-buttons">
          <button class="rsvp-btn accept" type="submit" name="status" value="confirmed"{{if .Disabled}} disabled{{end}}>Приду</button>
          <button class="rsvp-btn decline" type="submit" name="status" value="declined"{{if .Disabled}} disabled{{end}}>Не смогу</button>
        </div>
      </form>
{{- else}}
      <div class="rsvp-success show">
        <svg class="checkmark" viewBox="0 0 64 64" fill="none">
          <circle cx="32" cy="32" r="28" stroke="currentColor" stroke-width="2"/>
          <path d="M20 32 L28 40 L44 24" stroke="currentColor" stroke-width="2.5" stroke-linecap="round" stroke-linejoin="round"/>
        </svg>
        <h3>{{.ResultTitle}}</h3>
        <p>{{.ResultText}}</p>
      </div>
{{- end}}
    </div>
  </section>

  <footer class="footer">
{{- template "divider" $}}
    <div class="footer-names">{{.Names}}</div>
    <div class="footer-date">{{.DateText}}</div>
{{- if .Hashtag}}
    <span class="footer-hashtag">{{.Hashtag}}</span>
{{- end}}
  </footer>
</div>
<style>{{.Styles}}</style>
{{define "divider"}}
      <svg width="200" height="30" viewBox="0 0 200 30" fill="none" class="ornament-divider">
        <line x1="0" y1="15" x2="70" y2="15" stroke="{{.Accent}}" stroke-width="0.5"/>
        <path d="M80 15 L90 5 L100 15 L90 25Z" stroke="{{.Accent}}" stroke-width="1" fill="none"/>
        <circle cx="90" cy="15" r="3" fill="{{.Accent}}" opacity="0.6"/>
        <path d="M100 15 L110 5 L120 15 L110 25Z" stroke="{{.Accent}}" stroke-width="1" fill="none"/>
        <circle cx="110" cy="15" r="3" fill="{{.Accent}}" opacity="0.6"/>
        <line x1="130" y1="15" x2="200" y2="15" stroke="{{.Accent}}" stroke-width="0.5"/>
      </svg>
{{end}}`))

type classicCount struct {
	N        int
	Word     string
	Selected bool
}

// ClassicElegant draws the full-page classic design: envelope intro,
// ornamented hero, bilingual greeting, detail cards, countdown, program
// timeline, location, RSVP form and footer. The envelope and the live
// countdown rely on the page script reacting to data attributes.
func ClassicElegant(data model.EventData, cfg model.ThemeConfig, ctx render.Context, state blocks.State) (template.HTML, error) {
	left := countdown.Until(data.Date, data.Time)

	greetingKz := data.GreetingKz
	if greetingKz == "" {
		greetingKz = classicDefaultKz
	}
	greetingRu := data.GreetingRu
	if greetingRu == "" {
		greetingRu = classicDefaultRu
	}

	venueName := data.Venue.Name
	if venueName == "" {
		venueName = "Ресторан"
	}
	venueAddress := data.Venue.Address
	if venueAddress == "" {
		venueAddress = "Адрес уточняется"
	}

	timeText := data.Time
	if timeText == "" {
		timeText = "18:00"
	}

	routeURL := data.Venue.MapURL
	if routeURL == "" {
		routeURL = "https://maps.google.com/?q=" + url.QueryEscape(data.Venue.Address)
	}

	mapEmbed := ""
	if data.Venue.MapURL != "" && !ctx.IsPreview {
		mapEmbed = data.Venue.MapURL
	}

	action := ""
	if ctx.CanRSVP() {
		action = "/i/" + ctx.EventSlug + "/" + ctx.GuestSlug + "/rsvp"
	}

	counts := make([]classicCount, 0, 5)
	words := map[int]string{1: "гость", 2: "гостя", 3: "гостя", 4: "гостя", 5: "гостей"}
	for n := 1; n <= 5; n++ {
		counts = append(counts, classicCount{N: n, Word: words[n], Selected: n == 2})
	}

	resultTitle, resultText := "Рахмет! Спасибо!", "Мы с нетерпением ждём встречи с вами!"
	if state == blocks.StateDeclined {
		resultTitle, resultText = "Жаль, что не сможете", "Мы будем скучать! Надеемся увидеться в другой раз."
	}

	var buf bytes.Buffer
	err := classicTmpl.Execute(&buf, struct {
		ShowIntro     bool
		Accent        string
		Corners       []string
		Person1       string
		Person2       string
		Names         string
		DateText      string
		Date          string
		Time          string
		TimeText      string
		GuestName     string
		GreetingKz    string
		GreetingRu    string
		GatheringTime string
		VenueName     string
		VenueAddress  string
		HasVenue      bool
		DressCode     string
		Live          bool
		Left          countdown.Result
		Program       []model.ProgramItem
		MapEmbed      string
		RouteURL      string
		Deadline      string
		TableNumber   *int
		State         string
		Action        string
		Counts        []classicCount
		Disabled      bool
		ResultTitle   string
		ResultText    string
		Hashtag       string
		Styles        template.CSS
	}{
		ShowIntro:     !ctx.IsPreview,
		Accent:        cfg.Colors.Accent,
		Corners:       []string{"top-left", "top-right", "bottom-left", "bottom-right"},
		Person1:       data.Names.Person1,
		Person2:       data.Names.Person2,
		Names:         data.Names.Combined(),
		DateText:      render.FormatDate(data.Date),
		Date:          data.Date,
		Time:          data.Time,
		TimeText:      timeText,
		GuestName:     ctx.GuestName,
		GreetingKz:    greetingKz,
		GreetingRu:    greetingRu,
		GatheringTime: data.GatheringTime,
		VenueName:     venueName,
		VenueAddress:  venueAddress,
		HasVenue:      data.Venue.Name != "" || data.Venue.Address != "",
		DressCode:     data.DressCode,
		Live:          !ctx.IsPreview && !left.IsPlaceholder && !left.IsPast,
		Left:          left,
		Program:       data.Program,
		MapEmbed:      mapEmbed,
		RouteURL:      routeURL,
		Deadline:      render.FormatDeadline(data.RSVPDeadline),
		TableNumber:   ctx.TableNumber,
		State:         string(state),
		Action:        action,
		Counts:        counts,
		Disabled:      !ctx.CanRSVP(),
		ResultTitle:   resultTitle,
		ResultText:    resultText,
		Hashtag:       data.Hashtag,
		Styles:        template.CSS(classicStyles(cfg)),
	})
	if err != nil {
		return "", fmt.Errorf("render classic-elegant: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// classicStyles substitutes the theme palette and fonts into the page
// stylesheet. Hex alpha suffixes ride directly on the substituted colors.
func classicStyles(cfg model.ThemeConfig) string {
	r := strings.NewReplacer(
		"{accent}", cfg.Colors.Accent,
		"{accentLight}", cfg.Colors.AccentLight,
		"{primary}", cfg.Colors.Primary,
		"{secondary}", cfg.Colors.Secondary,
		"{text}", cfg.Colors.Text,
		"{textMuted}", cfg.Colors.TextMuted,
		"{heading}", cfg.Fonts.Heading,
		"{body}", cfg.Fonts.Body,
	)
	return r.Replace(classicCSS)
}

const classicCSS = `
.envelope-intro{position:fixed;top:0;left:0;width:100%;height:100%;z-index:1000;display:flex;align-items:center;justify-content:center;background:{text};cursor:pointer}
.envelope-container{text-align:center;animation:float 3s ease-in-out infinite}
.envelope-icon{width:120px;height:120px;margin-bottom:32px;filter:drop-shadow(0 0 40px {accent}40)}
.envelope-text{font-family:'{heading}',serif;font-size:1.3rem;font-weight:300;color:{accentLight};letter-spacing:4px;text-transform:uppercase;animation:pulse-text 2s ease-in-out infinite}
@keyframes float{0%,100%{transform:translateY(0)}50%{transform:translateY(-12px)}}
@keyframes pulse-text{0%,100%{opacity:0.6}50%{opacity:1}}
.invitation{max-width:100%;overflow-x:hidden;font-family:'{body}',sans-serif;background:{primary};color:{text};line-height:1.6}
.invitation section{position:relative;padding:100px 24px;overflow:hidden}
.section-inner{max-width:680px;margin:0 auto;position:relative;z-index:2}
.hero{min-height:100vh;display:flex;align-items:center;justify-content:center;text-align:center;background:{text};color:{primary};position:relative}
.hero::before{content:'';position:absolute;inset:0;background:radial-gradient(ellipse at 30% 20%,{accent}14 0%,transparent 50%),radial-gradient(ellipse at 70% 80%,{accent}10 0%,transparent 50%);pointer-events:none}
.hero-border{position:absolute;inset:16px;border:1px solid {accent}26;pointer-events:none}
.hero-border::before{content:'';position:absolute;inset:8px;border:1px solid {accent}14}
.ornament-corner{position:absolute;width:120px;height:120px;opacity:0.12;pointer-events:none}
.ornament-corner.top-left{top:20px;left:20px}
.ornament-corner.top-right{top:20px;right:20px;transform:scaleX(-1)}
.ornament-corner.bottom-left{bottom:20px;left:20px;transform:scaleY(-1)}
.ornament-corner.bottom-right{bottom:20px;right:20px;transform:scale(-1,-1)}
.hero-overline{font-size:0.7rem;font-weight:500;letter-spacing:8px;text-transform:uppercase;color:{accent};margin-bottom:40px;opacity:0;animation:fadeSlideUp 1s ease 0.3s forwards}
.hero-names{font-family:'{heading}',serif;font-weight:300;font-size:clamp(2.8rem,8vw,5.5rem);line-height:1.15;margin-bottom:16px;opacity:0;animation:fadeSlideUp 1.2s ease 0.6s forwards}
.hero-names .amp{display:block;font-style:italic;font-size:0.45em;color:{accent};margin:8px 0;letter-spacing:2px}
.hero-date-line{display:flex;align-items:center;justify-content:center;gap:20px;margin-top:40px;opacity:0;animation:fadeSlideUp 1s ease 0.9s forwards}
.hero-date-line .line{width:60px;height:1px;background:{accent};opacity:0.4}
.hero-date{font-size:0.8rem;letter-spacing:6px;color:{accentLight}}
.scroll-hint{position:absolute;bottom:40px;left:50%;transform:translateX(-50%);display:flex;flex-direction:column;align-items:center;gap:8px;opacity:0;animation:fadeIn 1s ease 1.5s forwards}
.scroll-hint span{font-size:0.6rem;letter-spacing:4px;text-transform:uppercase;color:{accent};opacity:0.5}
.scroll-line{width:1px;height:40px;background:linear-gradient(to bottom,{accent},transparent);animation:scroll-pulse 2s ease-in-out infinite}
@keyframes scroll-pulse{0%,100%{opacity:0.3;transform:scaleY(1)}50%{opacity:0.8;transform:scaleY(1.3)}}
@keyframes fadeSlideUp{from{opacity:0;transform:translateY(30px)}to{opacity:1;transform:translateY(0)}}
@keyframes fadeIn{from{opacity:0}to{opacity:1}}
.greeting{background:{primary};text-align:center;padding:120px 24px}
.ornament-divider{width:200px;height:30px;margin:0 auto 48px}
.guest-name-slot{display:block;font-family:'{heading}',serif;font-size:clamp(1.6rem,4vw,2.2rem);font-weight:600;font-style:italic;color:{accent};margin:32px 0;padding:16px 0;border-top:1px solid {accentLight};border-bottom:1px solid {accentLight}}
.greeting-text{font-family:'{heading}',serif;font-size:clamp(1.15rem,3vw,1.4rem);line-height:2;color:{text};max-width:560px;margin:0 auto}
.details{background:{text};color:{primary};text-align:center}
.section-label{font-size:0.65rem;font-weight:600;letter-spacing:6px;text-transform:uppercase;color:{accent};margin-bottom:48px}
.details-grid{display:grid;grid-template-columns:1fr;gap:56px;margin-top:48px}
@media (min-width:600px){.details-grid{grid-template-columns:1fr 1fr}}
.detail-card{padding:40px 24px;border:1px solid {accent}1f;position:relative;transition:border-color 0.4s ease}
.detail-card:hover{border-color:{accent}4d}
.detail-card::before{content:'';position:absolute;top:-1px;left:50%;transform:translateX(-50%);width:40px;height:2px;background:{accent}}
.detail-icon{width:36px;height:36px;margin:0 auto 20px;color:{accent}}
.detail-title{font-family:'{heading}',serif;font-size:1.6rem;font-weight:500;margin-bottom:12px}
.detail-info{font-size:0.85rem;line-height:1.8;color:{primary}99;font-weight:300}
.detail-info strong{display:block;color:{accentLight};font-weight:500;font-size:1rem;margin-bottom:4px}
.countdown-section{background:{primary};text-align:center}
.countdown-grid{display:grid;grid-template-columns:repeat(4,1fr);gap:16px;max-width:480px;margin:48px auto 0}
.countdown-item{padding:24px 8px;background:#fff;border:1px solid {accent}26;position:relative}
.countdown-item::after{content:'';position:absolute;bottom:0;left:50%;transform:translateX(-50%);width:20px;height:1px;background:{accent}}
.countdown-number{font-family:'{heading}',serif;font-size:clamp(2.2rem,6vw,3rem);font-weight:300;color:{text};line-height:1;margin-bottom:8px}
.countdown-label{font-size:0.6rem;font-weight:600;letter-spacing:3px;text-transform:uppercase;color:{textMuted}}
.program{background:#fff;text-align:center}
.timeline{margin-top:56px;position:relative;text-align:left;max-width:500px;margin-left:auto;margin-right:auto}
.timeline::before{content:'';position:absolute;left:0;top:0;bottom:0;width:1px;background:linear-gradient(to bottom,transparent,{accentLight},{accentLight},transparent)}
.timeline-item{padding:0 0 48px 40px;position:relative}
.timeline-item:last-child{padding-bottom:0}
.timeline-item::before{content:'';position:absolute;left:-4px;top:6px;width:9px;height:9px;border-radius:50%;background:{accent};box-shadow:0 0 0 4px #fff,0 0 0 5px {accentLight}}
.timeline-time{font-size:0.65rem;font-weight:600;letter-spacing:3px;text-transform:uppercase;color:{accent};margin-bottom:6px}
.timeline-title{font-family:'{heading}',serif;font-size:1.3rem;font-weight:500;color:{text};margin-bottom:4px}
.timeline-desc{font-size:0.82rem;color:{textMuted};font-weight:300}
.location{background:{secondary};text-align:center}
.location .detail-title{color:{text};margin-bottom:8px}
.location-address{color:{textMuted};font-size:0.9rem}
.map-wrapper{margin-top:48px;border:1px solid {accent}33;overflow:hidden;aspect-ratio:16/9;max-height:400px;background:{text};position:relative}
.map-wrapper iframe{width:100%;height:100%;border:none;filter:grayscale(0.3) contrast(1.1)}
.map-overlay{position:absolute;inset:0;background:linear-gradient(to bottom,{text}1a,{text}66);pointer-events:none}
.location-btn{display:inline-flex;align-items:center;gap:10px;margin-top:32px;padding:16px 40px;background:{text};color:{accentLight};border:none;font-size:0.72rem;font-weight:600;letter-spacing:4px;text-transform:uppercase;cursor:pointer;text-decoration:none;transition:all 0.4s ease}
.location-btn:hover{background:{accent};color:#fff}
.rsvp{background:{text};color:{primary};text-align:center}
.rsvp-title{font-family:'{heading}',serif;font-size:clamp(2rem,5vw,3rem);font-weight:300;margin-bottom:16px}
.rsvp-subtitle{font-size:0.85rem;color:{primary}80;font-weight:300;margin-bottom:56px}
.rsvp-table{font-size:0.78rem;letter-spacing:2px;text-transform:uppercase;color:{accentLight};margin-bottom:32px}
.rsvp-form{max-width:420px;margin:0 auto;text-align:left}
.form-group{margin-bottom:28px}
.form-label{display:block;font-size:0.62rem;font-weight:600;letter-spacing:3px;text-transform:uppercase;color:{accent};margin-bottom:10px}
.form-input,.form-select,.form-textarea{width:100%;padding:14px 0;background:transparent;border:none;border-bottom:1px solid {accent}33;color:{primary};font-family:'{heading}',serif;font-size:1.15rem;outline:none;transition:border-color 0.3s ease}
.form-input:focus,.form-select:focus,.form-textarea:focus{border-color:{accent}}
.form-input::placeholder,.form-textarea::placeholder{color:{primary}40}
.form-select{cursor:pointer;-webkit-appearance:none;appearance:none}
.form-select option{background:{text};color:{primary}}
.form-textarea{resize:vertical;min-height:80px;border:1px solid {accent}26;padding:14px 16px;margin-top:4px}
.rsvp-buttons{display:grid;grid-template-columns:1fr 1fr;gap:16px;margin-top:40px}
.rsvp-btn{padding:18px 24px;font-size:0.7rem;font-weight:600;letter-spacing:4px;text-transform:uppercase;border:1px solid {accent};cursor:pointer;transition:all 0.4s ease}
.rsvp-btn.accept{background:{accent};color:{text}}
.rsvp-btn.accept:hover{background:{accentLight};border-color:{accentLight}}
.rsvp-btn.decline{background:transparent;color:{accent}}
.rsvp-btn.decline:hover{background:{accent}1a}
.rsvp-success{text-align:center;padding:40px 0;animation:fadeSlideUp 0.6s ease forwards}
.rsvp-success .checkmark{width:64px;height:64px;margin:0 auto 24px;color:{accent}}
.rsvp-success h3{font-family:'{heading}',serif;font-size:1.8rem;font-weight:400;margin-bottom:8px}
.rsvp-success p{color:{primary}80;font-size:0.9rem}
.footer{background:{text};border-top:1px solid {accent}1a;text-align:center;padding:60px 24px}
.footer-names{font-family:'{heading}',serif;font-size:1.6rem;font-weight:300;color:{accent};letter-spacing:2px}
.footer-date{font-size:0.7rem;letter-spacing:4px;color:{primary}4d;margin-top:12px;text-transform:uppercase}
.footer-hashtag{display:inline-block;margin-top:24px;font-family:'{heading}',serif;font-size:1rem;font-style:italic;color:{accentLight};opacity:0.5}
.reveal{opacity:0;transform:translateY(40px);transition:opacity 0.8s ease,transform 0.8s ease}
.reveal.visible{opacity:1;transform:translateY(0)}
@media (max-width:480px){.invitation section{padding:80px 20px}.countdown-grid{gap:8px}.countdown-item{padding:16px 4px}.rsvp-buttons{grid-template-columns:1fr}.hero-border{inset:10px}.ornament-corner{width:80px;height:80px}}
`

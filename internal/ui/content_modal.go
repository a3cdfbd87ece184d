package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/nhatvu148/solar-portfolio/internal/model"
)

// BuildContentView renders every section of a planet's content
func BuildContentView(c model.PlanetContent, loc *Localization, onOpenURL func(string)) fyne.CanvasObject {
	box := container.NewVBox()
	if c.Subtitle != "" {
		sub := widget.NewLabel(c.Subtitle)
		sub.Wrapping = fyne.TextWrapWord
		sub.Importance = widget.LowImportance
		box.Add(sub)
	}

	for _, section := range c.Sections {
		if section.Title != "" {
			title := widget.NewLabel(section.Title)
			title.TextStyle = fyne.TextStyle{Bold: true}
			box.Add(title)
		}
		box.Add(buildSection(section, loc, onOpenURL))
		box.Add(widget.NewSeparator())
	}
	return box
}

func buildSection(s model.ContentSection, loc *Localization, onOpenURL func(string)) fyne.CanvasObject {
	switch s.Type {
	case model.SectionSkills:
		return buildSkills(s.Skills)
	case model.SectionProjects:
		return buildProjects(s.Projects, onOpenURL)
	case model.SectionTimeline:
		return buildTimeline(s.Timeline)
	case model.SectionContact:
		if s.Contact == nil {
			return container.NewVBox()
		}
		return newContactBlock(*s.Contact, loc, onOpenURL)
	default:
		text := widget.NewLabel(s.Text)
		text.Wrapping = fyne.TextWrapWord
		return text
	}
}

// skillStars renders a level as filled and empty stars
func skillStars(level int) string {
	return strings.Repeat(IconStarFull, level) + strings.Repeat(IconStarEmpty, model.MaxSkillLevel-level)
}

func buildSkills(skills []model.Skill) fyne.CanvasObject {
	rows := container.NewVBox()
	for _, skill := range skills {
		level := skill.ClampedLevel()

		bar := widget.NewProgressBar()
		bar.Min = 0
		bar.Max = model.MaxSkillLevel
		bar.TextFormatter = func() string { return skillStars(level) }
		bar.SetValue(float64(level))

		name := widget.NewLabel(skill.Name)
		category := widget.NewLabel(string(skill.Category))
		category.Importance = widget.LowImportance

		barBox := container.NewGridWrap(fyne.NewSize(SkillBarWidth, bar.MinSize().Height), bar)
		rows.Add(container.NewBorder(nil, nil, name, barBox, category))
	}
	return rows
}

func buildProjects(projects []model.Project, onOpenURL func(string)) fyne.CanvasObject {
	list := container.NewVBox()
	for _, p := range projects {
		desc := widget.NewLabel(p.Description)
		desc.Wrapping = fyne.TextWrapWord

		body := container.NewVBox(desc)
		if len(p.Technologies) > 0 {
			tech := widget.NewLabel(strings.Join(p.Technologies, MiddleDotSeparator))
			tech.Importance = widget.LowImportance
			tech.Wrapping = fyne.TextWrapWord
			body.Add(tech)
		}

		links := container.NewHBox()
		for _, link := range []string{p.Link, p.GitHub} {
			if link == "" {
				continue
			}
			target := link
			btn := widget.NewButton(IconLink+" "+target, func() {
				if onOpenURL != nil {
					onOpenURL(target)
				}
			})
			btn.Importance = widget.LowImportance
			links.Add(btn)
		}
		if len(links.Objects) > 0 {
			body.Add(links)
		}

		list.Add(widget.NewCard(p.Title, "", body))
	}
	return list
}

func timelineIcon(kind string) string {
	switch kind {
	case "education":
		return IconEducation
	case "achievement":
		return IconTrophy
	default:
		return IconBriefcase
	}
}

func buildTimeline(entries []model.TimelineEntry) fyne.CanvasObject {
	list := container.NewVBox()
	for _, e := range entries {
		title := widget.NewLabel(timelineIcon(e.Kind) + " " + e.Title)
		title.TextStyle = fyne.TextStyle{Bold: true}

		meta := widget.NewLabel(e.Company + MiddleDotSeparator + e.Period)
		meta.Importance = widget.LowImportance

		desc := widget.NewLabel(e.Description)
		desc.Wrapping = fyne.TextWrapWord

		list.Add(container.NewVBox(title, meta, desc))
	}
	return list
}

// newContactBlock lists contact links as buttons
func newContactBlock(info model.ContactInfo, loc *Localization, onOpenURL func(string)) fyne.CanvasObject {
	open := func(target string) func() {
		return func() {
			if onOpenURL != nil {
				onOpenURL(target)
			}
		}
	}

	rows := container.NewVBox()
	add := func(icon, label, value string) {
		if value == "" {
			return
		}
		btn := widget.NewButton(icon+" "+label+": "+value, open(value))
		btn.Alignment = widget.ButtonAlignLeading
		btn.Importance = widget.LowImportance
		rows.Add(btn)
	}
	add(IconMail, loc.GetText(KeyEmail), info.Email)
	add(IconLink, loc.GetText(KeyGitHub), info.GitHub)
	add(IconBriefcase, loc.GetText(KeyLinkedIn), info.LinkedIn)
	add(IconLink, loc.GetText(KeyWebsite), info.Website)
	return rows
}

// ShowContentModal opens the content of p in a dialog
func ShowContentModal(window fyne.Window, p model.Planet, loc *Localization, onOpenURL func(string)) dialog.Dialog {
	title := p.Content.Title
	if title == "" {
		title = p.DisplayName()
	}
	view := BuildContentView(p.Content, loc, onOpenURL)
	d := dialog.NewCustom(title, loc.GetText(KeyClose), container.NewVScroll(view), window)
	d.Resize(fyne.NewSize(ModalWidth, ModalHeight))
	d.Show()
	return d
}

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fhsmendes/weather-lookup/lookup"
	"github.com/fhsmendes/weather-lookup/models"
	"github.com/fhsmendes/weather-lookup/utils"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#333333")).MarginBottom(1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C")).Background(lipgloss.Color("#FDE8E8")).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true)
	tempStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0083B0"))
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#66C2FF")).Padding(1, 2)
)

// lookupDoneMsg carrega o desfecho de uma consulta e a geração que a disparou.
type lookupDoneMsg struct {
	generation uint64
	outcome    models.Outcome
}

// App é o modelo Bubble Tea da interface de terminal.
type App struct {
	ctx        context.Context
	resolver   lookup.Resolver
	input      textinput.Model
	spinner    spinner.Model
	state      models.QueryState
	generation uint64
}

func NewApp(ctx context.Context, resolver lookup.Resolver) *App {
	ti := textinput.New()
	ti.Placeholder = "Enter city name"
	ti.Prompt = "› "
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &App{
		ctx:      ctx,
		resolver: resolver,
		input:    ti,
		spinner:  sp,
	}
}

func (a *App) State() models.QueryState { return a.state }

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			return a, a.submit()
		}

	case lookupDoneMsg:
		if msg.generation == a.generation {
			a.state.Outcome = msg.outcome
		}
		return a, nil

	case spinner.TickMsg:
		if !a.state.IsLoading() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.state.CityInput = a.input.Value()
	return a, cmd
}

func (a *App) submit() tea.Cmd {
	city := a.state.CityInput
	if utils.IsBlankCity(city) {
		return nil
	}

	a.generation++
	gen := a.generation
	a.state.Outcome = models.Loading()

	resolver, ctx := a.resolver, a.ctx
	return tea.Batch(
		a.spinner.Tick,
		func() tea.Msg {
			return lookupDoneMsg{generation: gen, outcome: resolver.Resolve(ctx, city)}
		},
	)
}

func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🌤 Weather Forecast"))
	b.WriteString("\n")
	b.WriteString(a.input.View())
	b.WriteString("\n\n")
	b.WriteString(renderState(a.state, a.spinner.View()))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("enter: search • esc: quit"))
	b.WriteString("\n")

	return b.String()
}

// renderState escolhe um único ramo: carregando, erro, resultado ou instrução.
func renderState(s models.QueryState, spin string) string {
	switch s.View() {
	case models.ViewLoading:
		return spin + " " + mutedStyle.Render("Loading weather data...")
	case models.ViewError:
		msg, _ := s.ErrorMessage()
		return errorStyle.Render(msg)
	case models.ViewResult:
		w, _ := s.Weather()
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			headerStyle.Render(w.CityName+", "+w.CountryName),
			tempStyle.Render(utils.FormatTemperature(w.TemperatureCelsius)),
			mutedStyle.Render("Wind Speed: "+utils.FormatWindSpeed(w.WindSpeedKph)),
		))
	default:
		return mutedStyle.Render("Enter a city name to see the weather forecast")
	}
}

package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	domainErrors "github.com/thomas-vilte/issuemate/internal/errors"
	"github.com/thomas-vilte/issuemate/internal/i18n"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	// Emojis with colors
	MateEmoji    = "🧉"
	SuccessEmoji = Success.Sprint("✅")
	ErrorEmoji   = Error.Sprint("❌")
	WarningEmoji = Warning.Sprint("⚠️")
	InfoEmoji    = Info.Sprint("ℹ️")
	RocketEmoji  = Accent.Sprint("🚀")
	StatsEmoji   = Accent.Sprint("📊")
)

// SetEmojiEnabled swaps the emoji markers for plain ASCII ones. Package
// state so every print helper honours the setting without threading it
// through call sites.
func SetEmojiEnabled(enabled bool) {
	if enabled {
		MateEmoji = "🧉"
		SuccessEmoji = Success.Sprint("✅")
		ErrorEmoji = Error.Sprint("❌")
		WarningEmoji = Warning.Sprint("⚠️")
		InfoEmoji = Info.Sprint("ℹ️")
		RocketEmoji = Accent.Sprint("🚀")
		StatsEmoji = Accent.Sprint("📊")
		return
	}
	MateEmoji = ""
	SuccessEmoji = Success.Sprint("[ok]")
	ErrorEmoji = Error.Sprint("[err]")
	WarningEmoji = Warning.Sprint("[warn]")
	InfoEmoji = Info.Sprint("[info]")
	RocketEmoji = Accent.Sprint(">>")
	StatsEmoji = Accent.Sprint("[#]")
}

var activeSpinner *SmartSpinner
var suspendedSpinner *SmartSpinner

// SmartSpinner is a spinner with enhanced capabilities
type SmartSpinner struct {
	spinner *spinner.Spinner
}

// NewSmartSpinner creates a new spinner with an initial message
func NewSmartSpinner(initialMessage string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+MateEmoji+" "+initialMessage),
	)
	return &SmartSpinner{spinner: s}
}

// Start starts the spinner and registers it as the globally active spinner.
func (s *SmartSpinner) Start() {
	activeSpinner = s
	s.spinner.Start()
}

// Stop stops the spinner and clears the active spinner record.
func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
	if activeSpinner == s {
		activeSpinner = nil
	}
	if suspendedSpinner == s {
		suspendedSpinner = nil
	}
}

// StopActiveSpinner stops the currently active spinner in the terminal session.
func StopActiveSpinner() {
	if activeSpinner != nil {
		activeSpinner.Stop()
	}
}

// SuspendActiveSpinner temporarily stops the active spinner without deleting its reference,
// allowing it to be resumed after user interaction.
func SuspendActiveSpinner() {
	if activeSpinner != nil {
		suspendedSpinner = activeSpinner
		activeSpinner.spinner.Stop()
		activeSpinner = nil
	}
}

// ResumeSuspendedSpinner resumes the previously suspended spinner.
func ResumeSuspendedSpinner() {
	if suspendedSpinner != nil {
		activeSpinner = suspendedSpinner
		activeSpinner.spinner.Start()
		suspendedSpinner = nil
	}
}

func (s *SmartSpinner) UpdateMessage(msg string) {
	s.spinner.Suffix = " " + msg
}

func (s *SmartSpinner) Success(msg string) {
	s.Stop()
	PrintSuccess(os.Stdout, msg)
}

func (s *SmartSpinner) Error(msg string) {
	s.Stop()
	PrintError(os.Stdout, msg)
}

func (s *SmartSpinner) Warning(msg string) {
	s.Stop()
	PrintWarning(msg)
}

func (s *SmartSpinner) Log(msg string) {
	s.Stop()
	fmt.Println(msg)
	s.Start()
}

// SpinnerBuilder allows building spinners with flexible configuration
type SpinnerBuilder struct {
	message string
	charset int
	color   string
	speed   time.Duration
}

// NewSpinner creates a new spinner builder
func NewSpinner() *SpinnerBuilder {
	return &SpinnerBuilder{
		charset: 14,
		color:   "cyan",
		speed:   100 * time.Millisecond,
	}
}

// WithMessage sets the spinner message
func (b *SpinnerBuilder) WithMessage(msg string) *SpinnerBuilder {
	b.message = msg
	return b
}

// WithColor sets the spinner color
func (b *SpinnerBuilder) WithColor(color string) *SpinnerBuilder {
	b.color = color
	return b
}

// WithSpeed sets the spinner speed
func (b *SpinnerBuilder) WithSpeed(speed time.Duration) *SpinnerBuilder {
	b.speed = speed
	return b
}

// WithCharset sets the spinner charset
func (b *SpinnerBuilder) WithCharset(charset int) *SpinnerBuilder {
	b.charset = charset
	return b
}

// Build constructs the SmartSpinner with the specified configuration
func (b *SpinnerBuilder) Build() *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[b.charset],
		b.speed,
		spinner.WithColor(b.color),
		spinner.WithSuffix(" "+MateEmoji+" "+b.message),
	)
	return &SmartSpinner{spinner: s}
}

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", SuccessEmoji, Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", ErrorEmoji, Error.Sprint(msg))
}

func PrintWarning(msg string) {
	fmt.Printf("%s %s\n", WarningEmoji, Warning.Sprint(msg))
}

func PrintInfo(msg string) {
	fmt.Printf("%s %s\n", InfoEmoji, Info.Sprint(msg))
}

func PrintSectionBanner(title string) {
	separator := color.New(color.FgCyan).Sprint("━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("\n%s\n", separator)
	fmt.Printf("%s %s\n", RocketEmoji, Accent.Sprint(title))
	fmt.Printf("%s\n\n", separator)
}

func PrintDuration(msg string, duration time.Duration) {
	durationStr := Dim.Sprintf("(%s)", duration.Round(10*time.Millisecond))
	fmt.Printf("%s %s %s\n", SuccessEmoji, Success.Sprint(msg), durationStr)
}

func PrintErrorWithSuggestion(errMsg, suggestion string) {
	PrintError(os.Stdout, errMsg)
	if suggestion != "" {
		fmt.Printf("\n%s %s\n", Info.Sprint("💡"), suggestion)
	}
}

// HandleAppError handles an application error and displays it in a friendly way.
// If translations is nil, it will use English defaults.
func HandleAppError(err error, translations ...*i18n.Translations) {
	if err == nil {
		return
	}

	var t *i18n.Translations
	if len(translations) > 0 && translations[0] != nil {
		t = translations[0]
	}

	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) {
		errorColor := color.New(color.FgRed, color.Bold)
		suggestionColor := color.New(color.FgCyan)
		dimColor := color.New(color.FgHiBlack)

		fmt.Println()
		_, _ = errorColor.Printf("❌ %s: %s\n", appErr.Type, appErr.Message)

		if appErr.Err != nil {
			_, _ = dimColor.Printf("   Details: %v\n", appErr.Err)
		}

		if appErr.Suggestion != "" {
			fmt.Println()
			tryPrefix := "💡 Try: "
			if t != nil {
				tryPrefix = t.GetMessage("ui_error.try_suggestion", 0, nil)
			}
			_, _ = suggestionColor.Printf("%s", tryPrefix)
			lines := strings.Split(appErr.Suggestion, "\n")
			for i, line := range lines {
				if i == 0 {
					fmt.Println(line)
				} else {
					fmt.Printf("       %s\n", line)
				}
			}
		}
		fmt.Println()

		return
	}

	PrintError(os.Stdout, err.Error())
}

func PrintKeyValue(key, value string) {
	keyColored := Dim.Sprint(key + ":")
	valueColored := color.New(color.FgWhite, color.Bold).Sprint(value)
	fmt.Printf("   %s %s\n", keyColored, valueColored)
}

func AskConfirmation(question string) bool {
	fmt.Printf("\n%s (y/n): ", Info.Sprint(question))
	var response string
	_, _ = fmt.Scanln(&response)
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes" || response == "s" || response == "si"
}

// ReadLine prompts and reads a single line from stdin. Titles carry
// spaces, so this reads the whole line, not the first word.
func ReadLine(prompt string) string {
	fmt.Print(Info.Sprint(prompt))
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}

func WithSpinner(message string, fn func() error) error {
	s := NewSmartSpinner(message)
	s.Start()

	err := fn()

	if err != nil {
		s.Error(fmt.Sprintf("Error: %v", err))
		return err
	}

	s.Success("Done")
	return nil
}

func WithSpinnerAndDuration(message string, fn func() error) error {
	s := NewSmartSpinner(message)
	s.Start()

	start := time.Now()
	err := fn()
	duration := time.Since(start)

	if err != nil {
		s.Error(fmt.Sprintf("Error: %v", err))
		return err
	}

	s.Stop()
	PrintDuration(message+" completed", duration)
	return nil
}

// EditText opens an editor so the user can edit the given text, returning
// the edited result. Used for issue bodies before publishing.
func EditText(initialText string, editorErrorMsg string) (string, error) {
	tmpFile, err := os.CreateTemp("", "issuemate-*.md")
	if err != nil {
		return "", fmt.Errorf("%s: %w", editorErrorMsg, err)
	}
	defer func() {
		if err := os.Remove(tmpFile.Name()); err != nil {
			return
		}
	}()

	if _, err := tmpFile.WriteString(initialText); err != nil {
		return "", fmt.Errorf("%s: %w", editorErrorMsg, err)
	}
	_ = tmpFile.Close()

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "nano"
		if _, err := exec.LookPath("nano"); err != nil {
			editor = "vi"
		}
	}

	cmd := exec.Command(editor, tmpFile.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s: %w", editorErrorMsg, err)
	}

	content, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("%s: %w", editorErrorMsg, err)
	}

	editedText := strings.TrimSpace(string(content))
	if editedText == "" {
		return "", fmt.Errorf("%s", editorErrorMsg)
	}

	return editedText, nil
}

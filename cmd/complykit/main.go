package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/complykit/complykit/internal/answers"
	"github.com/complykit/complykit/internal/compare"
	"github.com/complykit/complykit/internal/questionnaire"
	"github.com/complykit/complykit/internal/render"
	"github.com/complykit/complykit/internal/report"
	"github.com/complykit/complykit/internal/rules"
	"github.com/complykit/complykit/internal/schema"
	"github.com/complykit/complykit/internal/schema/validate"
	"github.com/complykit/complykit/internal/scoring"
	"github.com/complykit/complykit/internal/wizardui"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// assessFlags holds the parsed flags shared by assess and wizard.
type assessFlags struct {
	packName string
	packFile string
	format   string
	out      string
	failOn   string
	noColor  bool
	verbose  bool
}

func main() {
	root := &cobra.Command{
		Use:   "complykit",
		Short: "Self-assess AI systems against EU AI Act risk categories",
		Long:  "ComplyKit scores an AI compliance questionnaire against a declarative risk-rule pack and reports risk level, compliance status, and recommendations.",
	}

	var flags assessFlags
	assessCmd := &cobra.Command{
		Use:   "assess <answers-file>",
		Short: "Score a pre-filled answers file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssess(args[0], flags)
		},
	}
	addAssessFlags(assessCmd, &flags)

	var wizardFlags assessFlags
	wizardCmd := &cobra.Command{
		Use:   "wizard",
		Short: "Run the questionnaire interactively and score the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(wizardFlags)
		},
	}
	addAssessFlags(wizardCmd, &wizardFlags)

	var questionsFlags assessFlags
	questionsCmd := &cobra.Command{
		Use:   "questions",
		Short: "Print the questionnaire for a rule pack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuestions(questionsFlags)
		},
	}
	addAssessFlags(questionsCmd, &questionsFlags)

	var company string
	reportCmd := &cobra.Command{
		Use:   "report <report.json>",
		Short: "Generate a compliance report from a saved assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(args[0], company)
		},
	}
	reportCmd.Flags().StringVar(&company, "company", "your organisation", "Company name used in the executive summary")

	compareCmd := &cobra.Command{
		Use:   "compare <before.json> <after.json>",
		Short: "Diff two saved assessments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(args[0], args[1])
		},
	}

	root.AddCommand(assessCmd, wizardCmd, questionsCmd, reportCmd, compareCmd)

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(1)
	}
}

func addAssessFlags(cmd *cobra.Command, flags *assessFlags) {
	f := cmd.Flags()
	f.StringVar(&flags.packName, "pack", "eu-ai-act", "Built-in rule pack name")
	f.StringVar(&flags.packFile, "pack-file", "", "Load the rule pack from a YAML file instead")
	f.StringVar(&flags.format, "format", "json", "Output format: json or md")
	f.StringVar(&flags.out, "out", "", "Write output to file instead of stdout")
	f.StringVar(&flags.failOn, "fail-on", "", "Exit 2 if risk level >= this level (limited, high, or unacceptable)")
	f.BoolVar(&flags.noColor, "no-color", false, "Disable wizard colors")
	f.BoolVar(&flags.verbose, "verbose", false, "Print processing steps to stderr")
}

func runAssess(answersPath string, flags assessFlags) error {
	if err := validateFlags(flags); err != nil {
		return codeError(3, "invalid flags: %s", err)
	}

	pack, err := loadPack(flags)
	if err != nil {
		return codeError(3, "loading pack: %s", err)
	}

	logVerbose(flags.verbose, "Loading answers: %s", answersPath)
	set, err := answers.Load(answersPath, pack)
	if err != nil {
		return codeError(3, "loading answers: %s", err)
	}

	rep, err := buildReport(pack, set, schema.Input{
		Pack:        pack.Name,
		PackHash:    pack.Hash(),
		AnswersFile: answersPath,
	})
	if err != nil {
		return codeError(3, "scoring: %s", err)
	}

	if err := emit(rep, flags); err != nil {
		return err
	}
	return checkFailOn(rep.Result.RiskLevel, flags.failOn)
}

func runWizard(flags assessFlags) error {
	if err := validateFlags(flags); err != nil {
		return codeError(3, "invalid flags: %s", err)
	}

	pack, err := loadPack(flags)
	if err != nil {
		return codeError(3, "loading pack: %s", err)
	}

	engine := questionnaire.New(pack.Questions)
	model := wizardui.NewModel(engine, wizardui.Options{NoColor: flags.noColor})
	program := tea.NewProgram(model)
	final, err := program.Run()
	if err != nil {
		return codeError(1, "running wizard: %s", err)
	}

	finalModel, ok := final.(wizardui.Model)
	if !ok || finalModel.Aborted() {
		return codeError(1, "assessment aborted")
	}

	set, err := engine.Finalize(finalModel.State())
	if err != nil {
		return codeError(1, "finalizing assessment: %s", err)
	}

	rep, err := buildReport(pack, set, schema.Input{
		Pack:        pack.Name,
		PackHash:    pack.Hash(),
		Interactive: true,
	})
	if err != nil {
		return codeError(3, "scoring: %s", err)
	}

	if err := emit(rep, flags); err != nil {
		return err
	}
	return checkFailOn(rep.Result.RiskLevel, flags.failOn)
}

func runQuestions(flags assessFlags) error {
	if err := validateFlags(flags); err != nil {
		return codeError(3, "invalid flags: %s", err)
	}
	pack, err := loadPack(flags)
	if err != nil {
		return codeError(3, "loading pack: %s", err)
	}

	out, err := render.Questions(pack, flags.format)
	if err != nil {
		return codeError(3, "rendering questions: %s", err)
	}
	return writeOutput(flags.out, out)
}

func runReport(reportPath, company string) error {
	rep, err := loadReport(reportPath)
	if err != nil {
		return err
	}
	cr := report.Generate(company, rep)
	out, err := render.JSON(cr)
	if err != nil {
		return codeError(3, "rendering report: %s", err)
	}
	return writeOutput("", out)
}

func runCompare(beforePath, afterPath string) error {
	before, err := loadReport(beforePath)
	if err != nil {
		return err
	}
	after, err := loadReport(afterPath)
	if err != nil {
		return err
	}

	renderer, err := render.NewRenderer("md")
	if err != nil {
		return codeError(3, "%s", err)
	}
	beforeMD, err := renderer.Render(before)
	if err != nil {
		return codeError(3, "rendering %s: %s", beforePath, err)
	}
	afterMD, err := renderer.Render(after)
	if err != nil {
		return codeError(3, "rendering %s: %s", afterPath, err)
	}

	diff := compare.Diff(string(beforeMD), string(afterMD))
	if diff == "" {
		fmt.Println("Reports are identical.")
		return nil
	}
	fmt.Print(diff)
	return codeError(1, "reports differ")
}

// loadPack resolves --pack-file over --pack.
func loadPack(flags assessFlags) (*rules.Pack, error) {
	if flags.packFile != "" {
		logVerbose(flags.verbose, "Loading pack file: %s", flags.packFile)
		return rules.Load(flags.packFile)
	}
	return rules.Get(flags.packName)
}

// loadReport reads and validates a saved report file.
func loadReport(path string) (*schema.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, codeError(3, "reading report: %s", err)
	}
	rep, err := validate.Parse(data)
	if err != nil {
		return nil, codeError(3, "invalid report %s: %s", path, err)
	}
	return rep, nil
}

// buildReport scores the answer set and wraps it in the output envelope.
func buildReport(pack *rules.Pack, set schema.AnswerSet, input schema.Input) (*schema.Report, error) {
	result, err := scoring.Score(pack, set)
	if err != nil {
		return nil, err
	}
	return &schema.Report{
		Tool:    "complykit",
		Version: version,
		Input:   input,
		Result:  result,
		Answers: set,
	}, nil
}

// emit renders the report and writes it to --out or stdout.
func emit(rep *schema.Report, flags assessFlags) error {
	renderer, err := render.NewRenderer(flags.format)
	if err != nil {
		return codeError(3, "invalid format: %s", err)
	}
	out, err := renderer.Render(rep)
	if err != nil {
		return codeError(3, "rendering output: %s", err)
	}
	return writeOutput(flags.out, out)
}

func writeOutput(path string, data []byte) error {
	if path != "" {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return codeError(3, "writing output file: %s", err)
		}
		return nil
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return codeError(3, "writing output: %s", err)
	}
	// Ensure output ends with a newline for terminal friendliness.
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

// checkFailOn applies the --fail-on threshold to the assessed level.
func checkFailOn(level schema.RiskLevel, failOn string) error {
	if failOn == "" {
		return nil
	}
	threshold := schema.RiskLevel(failOn)
	if schema.RiskOrdinal(level) >= schema.RiskOrdinal(threshold) {
		return codeError(2, "risk level %s meets or exceeds --fail-on threshold %s", level, threshold)
	}
	return nil
}

// validateFlags returns an error if any flag value is invalid.
func validateFlags(flags assessFlags) error {
	switch flags.format {
	case "json", "md":
	default:
		return fmt.Errorf("--format must be json or md, got %q", flags.format)
	}

	if flags.failOn != "" {
		switch schema.RiskLevel(flags.failOn) {
		case schema.RiskLimited, schema.RiskHigh, schema.RiskUnacceptable:
		default:
			return fmt.Errorf("--fail-on must be limited, high, or unacceptable, got %q", flags.failOn)
		}
	}

	return nil
}

// logVerbose writes a message to stderr when verbose mode is enabled.
func logVerbose(verbose bool, format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "INFO: "+format+"\n", args...)
	}
}

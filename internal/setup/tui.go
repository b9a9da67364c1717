package setup

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/vadiminshakov/teller/config"
	"gopkg.in/yaml.v3"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1).
			MarginBottom(0)
)

// GeneratedConfigName is the file the wizard writes; pass it to -config.
const GeneratedConfigName = "teller.gen.yaml"

// RunTUI launches the terminal batch configuration wizard.
func RunTUI() error {
	var batches []config.ConfigTmp

	fmt.Print("\033[H\033[2J") // Clear screen
	fmt.Println(headerStyle.Render("TELLER CONFIG WIZARD"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Describe the transaction batches to settle.\n"))

	for {
		var input, output string
		var more bool

		fmt.Println(stepStyle.Render(fmt.Sprintf("BATCH %d", len(batches)+1)))
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Transactions file").
					Description("CSV with a type,client,tx,amount header").
					Value(&input).
					Validate(func(s string) error {
						if s == "" {
							return fmt.Errorf("input cannot be empty")
						}
						if _, err := os.Stat(s); err != nil {
							return fmt.Errorf("cannot read %s", s)
						}
						return nil
					}),
				huh.NewInput().
					Title("Snapshots file").
					Description("Where the result goes, empty means stdout").
					Value(&output),
			),
		).Run()
		if err != nil {
			return err
		}

		batches = append(batches, config.ConfigTmp{Input: input, Output: output})

		err = huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Add another batch?").
					Affirmative("Yes").
					Negative("No, finish").
					Value(&more),
			),
		).Run()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	if len(batches) > 1 {
		for i, b := range batches {
			if b.Output == "" {
				return fmt.Errorf("batch %d needs an output file: stdout cannot be shared by several batches", i+1)
			}
		}
	}

	// confirmation
	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("TELLER CONFIG WIZARD"))
	fmt.Println(stepStyle.Render("FINAL CONFIRMATION"))

	summary := ""
	for i, b := range batches {
		out := b.Output
		if out == "" {
			out = "stdout"
		}
		summary += fmt.Sprintf("Batch %d: %s -> %s\n", i+1, b.Input, out)
	}
	fmt.Println(lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1).Render(summary))

	var confirm bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save configuration?").
				Affirmative("Yes, save").
				Negative("No, exit").
				Value(&confirm),
		),
	).Run()
	if err != nil {
		return err
	}
	if !confirm {
		return fmt.Errorf("setup cancelled by user")
	}

	data, err := yaml.Marshal(batches)
	if err != nil {
		return fmt.Errorf("failed to generate yaml: %w", err)
	}
	if err := os.WriteFile(GeneratedConfigName, data, 0644); err != nil {
		return fmt.Errorf("failed to save config file: %w", err)
	}

	fmt.Println(lipgloss.NewStyle().Foreground(special).Render(
		fmt.Sprintf("\n✓ Configuration saved to %s\nRun: teller -config %s", GeneratedConfigName, GeneratedConfigName)))
	return nil
}

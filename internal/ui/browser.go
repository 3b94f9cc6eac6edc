package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gospec/pkg/spec"
)

// Viewer displays declared suites interactively
type Viewer interface {
	View(groups []*spec.Group) error
}

// Browser displays the declared group trees in an interactive TUI
type Browser struct{}

// NewBrowser creates a new Browser
func NewBrowser() *Browser {
	return &Browser{}
}

// View displays the trees until the user exits
func (b *Browser) View(groups []*spec.Group) error {
	if len(groups) == 0 {
		color.Yellow("No suites found")
		return nil
	}

	app := tview.NewApplication()

	root := tview.NewTreeNode("suites").SetColor(tcell.ColorWhite)
	for _, g := range groups {
		root.AddChild(b.buildNode(g))
	}

	tree := tview.NewTreeView().
		SetRoot(root).
		SetCurrentNode(root)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	total := 0
	for _, g := range groups {
		total += g.CountExamples()
	}
	headerView.SetText(fmt.Sprintf(" Suites (%d suites, %d examples) | Use ↑↓ to navigate, Enter to expand/collapse, → to view details, ← to go back, Ctrl+C to exit ", len(groups), total))

	updateDetails := func(node *tview.TreeNode) {
		switch ref := node.GetReference().(type) {
		case *spec.Group:
			detailsView.SetText(FormatGroupDetails(ref))
		case *spec.Example:
			detailsView.SetText(FormatExampleDetails(ref))
		default:
			detailsView.SetText("")
		}
	}

	tree.SetChangedFunc(updateDetails)
	tree.SetSelectedFunc(func(node *tview.TreeNode) {
		node.SetExpanded(!node.IsExpanded())
	})

	tree.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(tree)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(tree, 0, 1, true).
		AddItem(detailsContainer, 0, 2, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	updateDetails(root)

	if err := app.SetRoot(mainLayout, true).SetFocus(tree).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func (b *Browser) buildNode(g *spec.Group) *tview.TreeNode {
	node := tview.NewTreeNode(groupLabel(g)).
		SetReference(g).
		SetColor(tcell.ColorDarkCyan).
		SetSelectable(true)

	for _, item := range g.Items() {
		switch n := item.(type) {
		case *spec.Group:
			node.AddChild(b.buildNode(n))
		case *spec.Example:
			child := tview.NewTreeNode(exampleLabel(n)).SetReference(n)
			if n.Pending() {
				child.SetColor(tcell.ColorYellow)
			} else {
				child.SetColor(tcell.ColorWhite)
			}
			node.AddChild(child)
		}
	}
	return node
}

// FormatGroupDetails formats a group for display using tview color tags
func FormatGroupDetails(g *spec.Group) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[cyan]Group: %s[white]\n\n", g.FullDescription())

	if target, ok := g.Target(); ok {
		kind := "value"
		if target.Constructible() {
			kind = "type"
		}
		fmt.Fprintf(w, "[yellow]Described %s:[white]\t%s\n", kind, target.Name())
	}

	if helpers := g.Helpers(); len(helpers) > 0 {
		fmt.Fprintf(w, "[yellow]Helpers:[white]\t%s\n", strings.Join(helpers, ", "))
	}

	var overrides []string
	for _, name := range g.Helpers() {
		for p := g.Parent(); p != nil; p = p.Parent() {
			if p.Declares(name) {
				overrides = append(overrides, name)
				break
			}
		}
	}
	if len(overrides) > 0 {
		fmt.Fprintf(w, "[yellow]Overrides:[white]\t%s\n", strings.Join(overrides, ", "))
	}

	fmt.Fprintf(w, "[yellow]Nested groups:[white]\t%d\n", len(g.Children()))
	fmt.Fprintf(w, "[yellow]Examples:[white]\t%d (%d including nested)\n", len(g.Examples()), g.CountExamples())

	w.Flush()
	return builder.String()
}

// FormatExampleDetails formats an example for display using tview color tags
func FormatExampleDetails(e *spec.Example) string {
	var builder strings.Builder

	if e.Pending() {
		fmt.Fprintf(&builder, "[yellow]Pending: %s[white]\n\n", e.FullDescription())
		fmt.Fprintf(&builder, "[yellow]Message:[white]\n%s\n", e.PendingMessage())
		return builder.String()
	}

	fmt.Fprintf(&builder, "[green]Example: %s[white]\n\n", e.FullDescription())
	fmt.Fprintf(&builder, "[cyan]Group:[white] %s\n", e.Group().FullDescription())
	return builder.String()
}

package tablekit_test

import (
	"fmt"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit"
)

// Example builds a settings screen and drives it with a host that selects
// "Logout" and then goes back.
func Example() {
	contents := tablekit.NewContentsWithTitle("Settings")
	contents.AddSection(tablekit.SectionWithTitle("", []*tablekit.Item{
		tablekit.Action("Privacy", func() { fmt.Println("privacy") }),
		tablekit.Action("Logout", func() { fmt.Println("logging out") }),
	}))

	controller := tablekit.NewController()
	controller.SetContents(contents)

	passes := 0
	host := tablekit.HostFunc(func(c *tablekit.Controller, resume tablekit.Cursor) (tablekit.Interaction, error) {
		passes++
		if passes == 1 {
			snap := c.Snapshot()
			fmt.Printf("%s: %d rows\n", snap.Title(), snap.RowCount())
			path := tablekit.IndexPath{Section: 0, Row: 1}
			return tablekit.Selected(snap, path, tablekit.Cursor{IndexPath: path}), nil
		}
		fmt.Printf("back from row %s\n", resume.IndexPath)
		return tablekit.Back(resume), nil
	})

	nav := tablekit.NewNavigator(host)
	controller.PresentFrom(nav)
	if err := nav.Run(); err != nil {
		fmt.Println(err)
	}

	// Output:
	// Settings: 2 rows
	// logging out
	// back from row 0.1
}

// ExampleLayout shows how a host flattens contents into lines.
func ExampleLayout() {
	contents := tablekit.NewContentsWithTitle("Settings")
	contents.AddSection(tablekit.SectionWithTitle("Account", []*tablekit.Item{
		tablekit.Action("Profile", func() {}),
	}))
	contents.AddSection(tablekit.SectionWithTitle("", []*tablekit.Item{
		tablekit.Action("About", func() {}),
	}))

	for _, line := range tablekit.Layout(tablekit.NewControllerWithContents(contents)) {
		switch line.Kind {
		case tablekit.LineHeader:
			fmt.Printf("[%s]\n", line.Text)
		case tablekit.LineSpacer:
			fmt.Println()
		case tablekit.LineRow:
			fmt.Printf("  %s (%s)\n", line.Text, line.IndexPath)
		}
	}

	// Output:
	// [Account]
	//   Profile (0.0)
	//
	//   About (1.0)
}

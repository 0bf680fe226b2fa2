package debugui

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/bootstrap3d/ecs"
)

// EntityRow is one line of the entity browser.
type EntityRow struct {
	ID          ecs.EntityId
	ArchetypeID uint32
	Label       string
	Components  []string
}

// EntityRows lists every live entity ordered by archetype then ID. labelOf
// names an entity; nil uses the hex ID.
func EntityRows(storage *ecs.Storage, labelOf func(ecs.EntityId) string) []EntityRow {
	var rows []EntityRow
	for _, archetype := range storage.GetArchetypes() {
		names := make([]string, len(archetype.Types()))
		for i, t := range archetype.Types() {
			names[i] = t.String()
		}
		for id := range archetype.Iter() {
			label := ""
			if labelOf != nil {
				label = labelOf(id)
			}
			if label == "" {
				label = fmt.Sprintf("0x%X", uint64(id))
			}
			rows = append(rows, EntityRow{ID: id, ArchetypeID: archetype.ID(), Label: label, Components: names})
		}
	}
	slices.SortFunc(rows, func(a, b EntityRow) int {
		if c := cmp.Compare(a.ArchetypeID, b.ArchetypeID); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return rows
}

// FilterRows keeps rows whose label or component names contain filter,
// ignoring case.
func FilterRows(rows []EntityRow, filter string) []EntityRow {
	if filter == "" {
		return rows
	}
	filter = strings.ToLower(filter)
	var out []EntityRow
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Label), filter) ||
			strings.Contains(strings.ToLower(strings.Join(row.Components, " ")), filter) {
			out = append(out, row)
		}
	}
	return out
}

// EntityBrowser lists entities and shows the component values of the
// selected one. The selection follows the entity when it changes archetype.
type EntityBrowser struct {
	Storage *ecs.Storage
	LabelOf func(ecs.EntityId) string

	filter   string
	selected *ecs.EntityRef
}

// Select makes id the selected entity. Unknown IDs clear the selection.
func (eb *EntityBrowser) Select(id ecs.EntityId) {
	eb.selected = eb.Storage.CreateEntityRef(id)
}

// Selected returns the current ID of the selected entity, or false when
// nothing is selected or the entity was deleted.
func (eb *EntityBrowser) Selected() (ecs.EntityId, bool) {
	return eb.Storage.ResolveEntityRef(eb.selected)
}

func (eb *EntityBrowser) Render() {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	imgui.InputTextWithHint("##search", "Search...", &eb.filter, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear") {
		eb.filter = ""
	}

	selected, hasSelection := eb.Selected()
	rows := FilterRows(EntityRows(eb.Storage, eb.LabelOf), eb.filter)
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("EntityTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()
		for _, row := range rows {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			isSelected := hasSelection && selected == row.ID
			if imgui.SelectableBoolV(row.Label, isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.Select(row.ID)
			}
			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.Components, ", "))
		}
		imgui.EndTable()
	}
	imgui.Text(fmt.Sprintf("Total: %d entities", len(rows)))

	selected, hasSelection = eb.Selected()
	if !hasSelection {
		return
	}
	imgui.Separator()
	archetype := eb.Storage.GetArchetypeById(selected.ArchetypeId())
	if archetype == nil {
		return
	}
	for _, t := range archetype.Types() {
		imgui.Text(t.Name() + ": " + describe(eb.Storage.GetComponent(selected, t)))
	}
}

func describe(component any) string {
	if component == nil {
		return "<nil>"
	}
	v := reflect.ValueOf(component)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	return fmt.Sprintf("%+v", v.Interface())
}

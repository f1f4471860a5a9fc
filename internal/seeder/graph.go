package seeder

import "fmt"

type TableInfo struct {
	Name         string
	Dependencies []string
}

// Tables is the HotWind schema as far as insert ordering is concerned.
var Tables = []*TableInfo{
	{Name: "countries"},
	{Name: "currencies"},
	{Name: "heater_models"},
	{Name: "list_prices", Dependencies: []string{"heater_models"}},
	{Name: "vendors", Dependencies: []string{"countries", "currencies"}},
	{Name: "customers"},
	{Name: "exchange_rates", Dependencies: []string{"currencies"}},
	{Name: "purchase_orders", Dependencies: []string{"vendors"}},
	{Name: "purchase_lots", Dependencies: []string{"purchase_orders", "heater_models"}},
	{Name: "invoices", Dependencies: []string{"customers"}},
	{Name: "invoice_lines", Dependencies: []string{"invoices", "heater_models"}},
}

type DependencyGraph struct {
	tables map[string]*TableInfo
	names  []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		tables: make(map[string]*TableInfo),
	}
}

// NewSchemaGraph returns the graph of Tables.
func NewSchemaGraph() *DependencyGraph {
	g := NewDependencyGraph()
	for _, t := range Tables {
		g.AddTable(t)
	}
	return g
}

func (g *DependencyGraph) AddTable(table *TableInfo) {
	if _, exists := g.tables[table.Name]; !exists {
		g.names = append(g.names, table.Name)
	}
	g.tables[table.Name] = table
}

// BuildInsertionOrder returns a parents-first ordering. Among tables whose
// parents are all placed, the one added first goes next.
func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	pending := make(map[string]int, len(g.names))
	for _, name := range g.names {
		for _, dep := range g.tables[name].Dependencies {
			if _, ok := g.tables[dep]; !ok {
				return nil, fmt.Errorf("table %s depends on unknown table %s", name, dep)
			}
			if dep != name {
				pending[name]++
			}
		}
	}

	placed := make(map[string]bool, len(g.names))
	order := make([]string, 0, len(g.names))
	for len(order) < len(g.names) {
		next := ""
		for _, name := range g.names {
			if !placed[name] && pending[name] == 0 {
				next = name
				break
			}
		}
		if next == "" {
			var stuck []string
			for _, name := range g.names {
				if !placed[name] {
					stuck = append(stuck, name)
				}
			}
			return nil, fmt.Errorf("circular dependency detected among tables: %v", stuck)
		}

		placed[next] = true
		order = append(order, next)
		for _, name := range g.names {
			for _, dep := range g.tables[name].Dependencies {
				if dep == next && name != next {
					pending[name]--
				}
			}
		}
	}

	return order, nil
}

// ValidateOrder checks that every emitted table's parents were first emitted
// before it. emitted lists tables in first-emission order.
func (g *DependencyGraph) ValidateOrder(emitted []string) error {
	order, err := g.BuildInsertionOrder()
	if err != nil {
		return err
	}
	rank := make(map[string]int, len(order))
	for i, name := range order {
		rank[name] = i
	}

	position := make(map[string]int, len(emitted))
	for i, name := range emitted {
		position[name] = i
	}

	for i, name := range emitted {
		if _, ok := rank[name]; !ok {
			return fmt.Errorf("table %s is not part of the schema", name)
		}
		for _, dep := range g.tables[name].Dependencies {
			depIdx, exists := position[dep]
			if !exists {
				return fmt.Errorf("table %s references %s, which has no rows", name, dep)
			}
			if depIdx >= i {
				return fmt.Errorf("table %s is emitted before the table it references (%s)", name, dep)
			}
		}
	}
	return nil
}

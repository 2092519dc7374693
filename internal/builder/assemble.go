// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package builder

import (
	"context"
	"fmt"
	"sort"

	"github.com/specialistvlad/pkgplan/internal/config"
	"github.com/specialistvlad/pkgplan/internal/nodeid"
	"github.com/specialistvlad/pkgplan/internal/plan"
)

// assemble converts the validated graph into a sealed plan.
func (b *Builder) assemble(ctx context.Context) (*plan.Plan, error) {
	p := &plan.Plan{
		Package:      b.reg.Name,
		ToolsVersion: b.reg.ToolsVersion,
		Root:         b.root,
		Platforms:    make([]plan.PlatformPlan, 0, len(b.platforms)),
		Products:     make([]plan.ProductPlan, 0),
		Targets:      make([]plan.TargetPlan, 0),
		CompileOrder: make([]string, 0),
		Edges:        make([]plan.Edge, 0),
	}

	for _, v := range b.platforms {
		p.Platforms = append(p.Platforms, plan.PlatformPlan{Name: string(v.Kind), Minimum: v.Number()})
	}
	for _, d := range b.reg.Dependencies() {
		p.Dependencies = append(p.Dependencies, plan.DependencyPlan{Name: d.Name, URL: d.URL, Version: d.Version})
	}
	for _, pr := range b.reg.Products() {
		linkage := pr.Linkage
		if linkage == "" {
			linkage = config.LinkageStatic
		}
		p.Products = append(p.Products, plan.ProductPlan{
			Name:    pr.Name,
			Linkage: string(linkage),
			Targets: append([]string(nil), pr.Targets...),
		})
	}

	order, err := b.dag.TopologicalOrder()
	if err != nil {
		return nil, fmt.Errorf("failed to order targets: %w", err)
	}
	for _, id := range order {
		addr, err := nodeid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("internal error: bad node id %q: %w", id, err)
		}
		if addr.Kind != nodeid.KindTarget {
			continue
		}
		p.CompileOrder = append(p.CompileOrder, addr.Name)
		p.Targets = append(p.Targets, b.targetPlan(addr.Name))
	}

	for _, n := range b.store.AllNodes(ctx) {
		deps, err := b.store.DependenciesOf(ctx, n.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to read dependencies of %s: %w", n.ID, err)
		}
		for _, dep := range deps {
			p.Edges = append(p.Edges, plan.Edge{From: dep.String(), To: n.ID.String()})
		}
	}

	if err := p.Seal(); err != nil {
		return nil, err
	}
	return p, nil
}

func (b *Builder) targetPlan(name string) plan.TargetPlan {
	t, _ := b.reg.Target(name)
	src := b.sources[name]

	tp := plan.TargetPlan{
		Name:          name,
		Root:          src.root,
		PublicHeaders: src.publicHeaders,
		IncludePaths:  append([]string{}, src.includePaths...),
		Dependencies:  append([]string(nil), t.Dependencies...),
	}
	for k, v := range t.Defines {
		tp.Defines = append(tp.Defines, plan.Define{Name: k, Value: v})
	}
	sort.Slice(tp.Defines, func(i, j int) bool { return tp.Defines[i].Name < tp.Defines[j].Name })
	return tp
}

package dochub

import (
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/links"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/lists"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/tables"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// The helpers below translate the rule set into the options of each pass.

func (e *Engine) uniformityOptions() tables.UniformityOptions {
	c := e.cfg
	return tables.UniformityOptions{
		SingleCellFill: c.SingleCellFill,
		OtherFill:      c.OtherFill,
		Preserved:      c.IsPreserved,
		HeadingFont:    c.HeadingFont,
		HeadingSize:    c.HeadingSize,
		BodyFont:       c.BodyFont,
		BodySize:       c.BodySize,
		PreserveBold:   c.PreserveBold,
		Spacing:        wml.Spacing{Before: c.SpacingBefore, After: c.SpacingAfter},
		ListStyle:      c.ListStyle,
		MaxHeaderLines: c.MaxHeaderLines,
		Logger:         e.log(),
	}
}

func (e *Engine) classifyOptions(index int) tables.ClassifyOptions {
	return tables.ClassifyOptions{
		HeaderFill:    e.cfg.HeaderFill,
		SecondaryFill: e.cfg.SecondaryFill,
		HeaderLabel:   e.cfg.HeaderLabel,
		FoldCase:      e.cfg.FoldHeaderCase,
		Trace:         e.trace(index),
	}
}

func (e *Engine) formatterOptions() tables.FormatterOptions {
	return tables.FormatterOptions{
		HeaderFill:    e.cfg.HeaderFill,
		SecondaryFill: e.cfg.SecondaryFill,
		HeadingStyle:  e.cfg.HeadingStyle,
		Logger:        e.log(),
	}
}

func (e *Engine) listOptions() lists.Options {
	return lists.Options{
		ListStyle:   e.cfg.ListStyle,
		NormalStyle: e.cfg.NormalStyle,
		BodyFont:    e.cfg.BodyFont,
		BodySize:    e.cfg.BodySize,
		Logger:      e.log(),
	}
}

func (e *Engine) indentRules() []lists.IndentRule {
	rules := make([]lists.IndentRule, len(e.cfg.Indentation))
	for i, r := range e.cfg.Indentation {
		rules[i] = lists.IndentRule{Level: r.Level, SymbolIndent: r.SymbolIndent, TextIndent: r.TextIndent}
	}
	return rules
}

func (e *Engine) guardOptions() lists.GuardOptions {
	return lists.GuardOptions{
		ListStyle:   e.cfg.ListStyle,
		NormalStyle: e.cfg.NormalStyle,
		Lookahead:   e.cfg.GuardLookahead,
		Logger:      e.log(),
	}
}

func (e *Engine) linkOptions() links.Options {
	return links.Options{
		HyperlinkStyle: e.cfg.HyperlinkStyle,
		LinkColor:      e.cfg.LinkColor,
		Logger:         e.log(),
	}
}

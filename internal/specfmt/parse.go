// Copyright 2026 The Pairspec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package specfmt

import (
	"io"

	"pairspec.dev/pairspec/internal/diagnostic"
	"pairspec.dev/pairspec/internal/schema"
)

// Parse reads a specification (spec.md §6's grammar) from r and
// returns a schema.Builder ready for schema.Builder.Build. Syntax
// errors are recorded in diags and recovered from by skipping to the
// next category token (spec.md §7 kind 1); Parse itself only returns a
// non-nil error for unrecoverable I/O failures reading r.
func Parse(r io.Reader, diags *diagnostic.List) (*schema.Builder, error) {
	lx, err := newLexer(r)
	if err != nil {
		return nil, err
	}
	p := &parser{lx: lx, diags: diags, b: schema.NewBuilder()}
	p.parseSpec()
	return p.b, nil
}

type parser struct {
	lx    *lexer
	diags *diagnostic.List
	b     *schema.Builder
}

// parseSpec is a direct translation of genpairs.py's parseSpec: zero or
// more "NAME: value*" categories, with error recovery that skips
// forward to the next category token on a syntax error.
func (p *parser) parseSpec() {
	for {
		tok, cl := p.lx.peek()
		if cl == classEOF {
			return
		}
		if cl != classCategory {
			p.diags.Addf(diagnostic.KindSyntax,
				"syntax error on %q, expecting a category (NAME:); skipping to next category", tok)
			p.recoverToCategory()
			if _, cl := p.lx.peek(); cl == classEOF {
				return
			}
		}
		p.parseCategory()
	}
}

func (p *parser) recoverToCategory() {
	for {
		_, cl := p.lx.peek()
		if cl == classEOF || cl == classCategory {
			return
		}
		p.lx.next()
	}
}

func (p *parser) parseCategory() {
	tok, _ := p.lx.next() // the "NAME:" token
	name := tok[:len(tok)-1]
	slot := p.b.AddColumn(name)
	for {
		_, cl := p.lx.peek()
		if cl != classValue {
			return
		}
		p.parseValue(slot)
	}
}

func (p *parser) parseValue(slot int) {
	val, cl := p.lx.next()
	if cl != classValue {
		p.diags.Addf(diagnostic.KindSyntax, "syntax error, expecting a value, saw %q", val)
		return
	}
	conds := p.parseConditions()
	p.b.AddValue(slot, val, conds)
}

func (p *parser) parseConditions() []schema.Condition {
	var conds []schema.Condition
	for {
		_, cl := p.lx.peek()
		switch cl {
		case classError:
			p.lx.next()
			conds = append(conds, schema.Condition{Kind: schema.CondError})
		case classSingle:
			p.lx.next()
			conds = append(conds, schema.Condition{Kind: schema.CondSingle})
		case classIf:
			p.lx.next()
			arg, _ := p.lx.next()
			conds = append(conds, schema.Condition{Kind: schema.CondIf, Arg: arg})
		case classProp:
			p.lx.next()
			arg, _ := p.lx.next()
			conds = append(conds, schema.Condition{Kind: schema.CondProp, Arg: arg})
		case classExcept:
			p.lx.next()
			arg, _ := p.lx.next()
			conds = append(conds, schema.Condition{Kind: schema.CondExcept, Arg: arg})
		default:
			return conds
		}
	}
}

package kernel

import (
	"strconv"
	"strings"

	"github.com/zjykzk/sparkml-client-go"
)

// RefIDKey the placeholder replaced by the reference id generated for the statement
const RefIDKey = "refId"

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// Bindings the values of the placeholders, key is the placeholder name
type Bindings map[string]interface{}

// Statement the template of the kernel statement with the values bound to its placeholders
//
// The placeholder looks like {{name}}, every placeholder must be bound and every binding
// must be used.
type Statement struct {
	Template string
	Bindings Bindings

	err error
}

// NewInstance builds the expression creating the instance of the class
func NewInstance(class string, args ...interface{}) Statement {
	if err := sparkml.CheckIdentifier(class); err != nil {
		return badStatement("new "+class, "bad class name: "+err.Error())
	}
	tmpl, bindings := argsTemplate(args)
	return Statement{Template: "new " + class + "(" + tmpl + ")", Bindings: bindings}
}

// Call builds the expression invoking the method of the target
func Call(target Referencer, method string, args ...interface{}) Statement {
	if err := sparkml.CheckIdentifier(method); err != nil {
		return badStatement("."+method, "bad method name: "+err.Error())
	}
	tmpl, bindings := argsTemplate(args)
	bindings["target"] = target
	return Statement{Template: "{{target}}." + method + "(" + tmpl + ")", Bindings: bindings}
}

// Static builds the expression invoking the static method of the class
func Static(class, method string, args ...interface{}) Statement {
	if err := sparkml.CheckIdentifier(class); err != nil {
		return badStatement(class+"."+method, "bad class name: "+err.Error())
	}
	if err := sparkml.CheckIdentifier(method); err != nil {
		return badStatement(class+"."+method, "bad method name: "+err.Error())
	}
	tmpl, bindings := argsTemplate(args)
	return Statement{Template: class + "." + method + "(" + tmpl + ")", Bindings: bindings}
}

func argsTemplate(args []interface{}) (string, Bindings) {
	bindings := make(Bindings, len(args)+1)
	placeholders := make([]string, len(args))
	for i, a := range args {
		name := "arg" + strconv.Itoa(i)
		bindings[name] = a
		placeholders[i] = openDelim + name + closeDelim
	}
	return strings.Join(placeholders, ", "), bindings
}

func badStatement(tmpl, reason string) Statement {
	return Statement{Template: tmpl, err: &TemplateError{Template: tmpl, Reason: reason}}
}

// Assign turns the expression into the statement assigning its value to the generated reference
func (s Statement) Assign() Statement {
	s.Template = openDelim + RefIDKey + closeDelim + " = " + s.Template + ";"
	return s
}

// Terminate turns the expression into the statement
func (s Statement) Terminate() Statement {
	s.Template += ";"
	return s
}

// Render replaces the placeholders with the embeddable form of the bound values,
// the extra bindings are used together with the statement's
func (s Statement) Render(extra Bindings) (string, error) {
	if s.err != nil {
		return "", s.err
	}

	used := make(map[string]bool, len(s.Bindings)+len(extra))
	var b strings.Builder
	rest := s.Template
	for {
		i := strings.Index(rest, openDelim)
		if i < 0 {
			if strings.Contains(rest, closeDelim) {
				return "", s.templateError("unmatched " + closeDelim)
			}
			b.WriteString(rest)
			break
		}
		if strings.Contains(rest[:i], closeDelim) {
			return "", s.templateError("unmatched " + closeDelim)
		}
		b.WriteString(rest[:i])
		rest = rest[i+len(openDelim):]

		j := strings.Index(rest, closeDelim)
		if j < 0 {
			return "", s.templateError("unclosed " + openDelim)
		}
		name := strings.TrimSpace(rest[:j])
		rest = rest[j+len(closeDelim):]

		if err := sparkml.CheckIdentifier(name); err != nil {
			return "", s.templateError("bad placeholder " + name + ": " + err.Error())
		}

		v, ok := extra[name]
		if !ok {
			v, ok = s.Bindings[name]
		}
		if !ok {
			return "", s.templateError("missing binding " + name)
		}
		used[name] = true

		text, err := Embed(v)
		if err != nil {
			return "", s.templateError("cannot embed " + name + ": " + err.Error())
		}
		b.WriteString(text)
	}

	for _, bindings := range []Bindings{s.Bindings, extra} {
		for name := range bindings {
			if !used[name] {
				return "", s.templateError("unused binding " + name)
			}
		}
	}
	return b.String(), nil
}

func (s Statement) templateError(reason string) error {
	return &TemplateError{Template: s.Template, Reason: reason}
}

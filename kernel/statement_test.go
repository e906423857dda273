package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeProxy RefID

func (p fakeProxy) RefID() RefID { return RefID(p) }

func TestBuilders(t *testing.T) {
	text, err := NewInstance("IsotonicRegression").Assign().Render(Bindings{RefIDKey: RefID("r1")})
	assert.Nil(t, err)
	assert.Equal(t, "r1 = new IsotonicRegression();", text)

	text, err = Call(fakeProxy("r1"), "setIsotonic", false).Assign().Render(Bindings{RefIDKey: RefID("r2")})
	assert.Nil(t, err)
	assert.Equal(t, "r2 = r1.setIsotonic(false);", text)

	text, err = Call(fakeProxy("r1"), "run", RefID("d1")).Assign().Render(Bindings{RefIDKey: RefID("r3")})
	assert.Nil(t, err)
	assert.Equal(t, "r3 = r1.run(d1);", text)

	text, err = Static("IsotonicRegressionModel", "load", RefID("sc"), "/tmp/m").Assign().
		Render(Bindings{RefIDKey: RefID("m1")})
	assert.Nil(t, err)
	assert.Equal(t, `m1 = IsotonicRegressionModel.load(sc, "/tmp/m");`, text)

	text, err = Call(fakeProxy("m1"), "boundaries").Render(nil)
	assert.Nil(t, err)
	assert.Equal(t, "m1.boundaries()", text)

	text, err = Call(fakeProxy("sc"), "stop").Terminate().Render(nil)
	assert.Nil(t, err)
	assert.Equal(t, "sc.stop();", text)

	text, err = Call(fakeProxy("sc"), "parallelize", []float64(nil)).Render(nil)
	assert.Nil(t, err)
	assert.Equal(t, "sc.parallelize([])", text)

	text, err = Call(fakeProxy("sc"), "parallelize", []byte("ab")).Render(nil)
	assert.Nil(t, err)
	assert.Equal(t, "sc.parallelize([97,98])", text)
}

func TestBadNames(t *testing.T) {
	_, err := NewInstance("Foo();evil").Render(nil)
	assert.IsType(t, &TemplateError{}, err)

	_, err = Call(fakeProxy("r1"), "x(1);y").Render(nil)
	assert.IsType(t, &TemplateError{}, err)

	_, err = Static("A", "new").Render(nil)
	assert.IsType(t, &TemplateError{}, err)

	_, err = Call(fakeProxy("r1;drop"), "count").Render(nil)
	assert.IsType(t, &TemplateError{}, err)
}

func TestRender(t *testing.T) {
	s := Statement{
		Template: "{{refId}} = {{inRefId}}.setIsotonic({{ isotonic }});",
		Bindings: Bindings{"inRefId": RefID("r1"), "isotonic": true},
	}
	text, err := s.Render(Bindings{RefIDKey: RefID("r2")})
	assert.Nil(t, err)
	assert.Equal(t, "r2 = r1.setIsotonic(true);", text)

	cases := []struct {
		name string
		s    Statement
	}{
		{"missing", Statement{Template: "{{a}}"}},
		{"unused", Statement{Template: "1;", Bindings: Bindings{"a": 1}}},
		{"unclosed", Statement{Template: "{{a", Bindings: Bindings{"a": 1}}},
		{"unmatched", Statement{Template: "a}} {{a}}", Bindings: Bindings{"a": 1}}},
		{"unmatched tail", Statement{Template: "{{a}} b}}", Bindings: Bindings{"a": 1}}},
		{"bad placeholder", Statement{Template: "{{a-b}}", Bindings: Bindings{"a-b": 1}}},
		{"not embeddable", Statement{Template: "{{a}}", Bindings: Bindings{"a": func() {}}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.s.Render(nil)
			assert.IsType(t, &TemplateError{}, err)
		})
	}

	// extra binding which is not in the template
	_, err = Statement{Template: "1;"}.Render(Bindings{RefIDKey: RefID("r1")})
	assert.IsType(t, &TemplateError{}, err)
}

//go:build js && wasm

package nform

import (
	"fmt"
	"strings"
	"syscall/js"
)

// ConvertToNormalForms converts the formula in args[0] and returns
// both its normal forms, or an error message if it does not lex or parse.
// Skipped characters are reported when args[1] is true, for lenient mode.
//
// output: { error: string } | { cnf: string, dnf: string, warnings: string }
func ConvertToNormalForms(_ js.Value, args []js.Value) (ret any) {
	errorObj := func(err string) any {
		return js.ValueOf(map[string]any{
			"error": err,
		})
	}
	defer func() {
		if r := recover(); r != nil {
			ret = errorObj("converter panicked: " + fmt.Sprint(r))
		}
	}()
	if len(args) == 0 {
		return errorObj(fmt.Sprintf("expected at least 1 argument, got %d", len(args)))
	}

	formula := args[0].String()
	opts := Options{}
	if len(args) > 1 && args[1].Type() == js.TypeBoolean {
		opts.Lenient = args[1].Bool()
	}
	res, err := Convert(formula, opts)
	if err != nil {
		return errorObj("the formula has the following errors:\n" + FormatError(err, formula))
	}
	return js.ValueOf(map[string]any{
		"cnf":      res.CNF,
		"dnf":      res.DNF,
		"warnings": strings.Join(res.Diagnostics.Messages(formula), "\n"),
	})
}

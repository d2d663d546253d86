// Package validate contains precondition checks for arguments.
//
// Every check returns nil when the condition holds and otherwise a *Error
// naming the parameter and the violated condition. Errors carry one of the
// sentinel kinds (ErrInvalidArgument, ErrOutOfRange, ErrInvalidState) so
// callers can match them with errors.Is.
//
// Highlights:
// - True/TrueIf/NotNil/NotBlank: basic predicates
// - CollectionNotEmpty/CollectionEmpty/CollectionContains/CollectionDoesNotContain
// - DictionaryContainsKey/DictionaryDoesNotContainKey
// - EqualTo/NotEqualTo: structural equality checks
// - IntNotOutOfRange/FloatNotOutOfRange/DecimalNotOutOfRange: range checks with
//   four RangeEndPoints modes
// - NotInvalidNumber: rejects NaN and infinities
// - Must: turns a failed check into a panic for programmer errors
package validate

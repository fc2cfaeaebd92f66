// Package filename validates names typed by the user when creating a new
// document.
//
// A name is accepted only when it starts with a letter, carries an extension,
// and uses a restricted character set. The three predicates are exported so
// callers can check rules individually; Validate applies them in order and
// reports the first rule that fails.
package filename

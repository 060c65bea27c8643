// Package cli provides the interactive calendar client.
//
// It wires configuration, the local database, the event service and the
// calendar state into a REPL that stands in for the month, day and form
// screens of a graphical calendar.
//
// Commands:
//
//	month [YYYY-MM], next, prev    month grid, days with events are marked
//	day [YYYY-MM-DD], today        events of one day
//	add, edit <id>                 event form
//	delete <id>, clear             remove one or all events
//	export <file>, import <file>   iCalendar exchange
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

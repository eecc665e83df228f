// Package controller keeps the working filter criteria in sync with the page
// URL and the shared filter store.
//
// # Sync States
//
//	Uninitialized --Import--> Imported --Touch--> Touched
//	      |                      ^                   |
//	    Touch                    +------Import-------+
//	      v
//	Uninitialized (criteria change, no export)
//
// The URL is the authority until the user touches a control. Only in Touched
// does a mutation rewrite the query string (in place, no new history entry)
// and publish the resolved filter set. Observe re-imports when the location
// moved away from the query the controller last read or wrote, so its own
// exports never come back as imports.
package controller

// Package tui implements the interactive user browser on Bubble Tea.
//
// The model keeps no state of its own beyond cursors and widgets; what
// is shown comes from a view.Controller. Fetches run as tea.Cmd
// functions and their results come back as messages, so every state
// change is applied from Update:
//
//  1. Init marks the initial load as begun and fetches users.
//  2. usersLoadedMsg moves the controller to ready or error.
//  3. enter on a user issues a ticketed repository request.
//  4. reposLoadedMsg opens the overlay, unless its ticket is stale.
//
// Keys:
//
//   - /: search by login or id
//   - enter: view repositories
//   - s: cycle the repository order (name, stars, date)
//   - o, p: open in the browser
//   - y: copy the URL
//   - esc: close the overlay
//   - q, ctrl+c: quit
package tui

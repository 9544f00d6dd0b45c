package tui

// Key bindings reference:
//
// Global:
//   ctrl+c    Quit the application
//
// Slot list:
//   j/down    Move cursor down
//   k/up      Move cursor up
//   enter/e   Edit selected slot
//   r         Disable selected slot
//   w         Edit workspace count
//   d         Disable all application switchers (with confirmation)
//   ?         Open help
//   q/esc     Quit
//
// Edit form:
//   tab       Next field
//   shift+tab Previous field
//   left/right Cycle modifier (modifier field)
//   enter     Save binding
//   esc       Cancel
//
// Workspace count form:
//   enter     Save count
//   esc       Cancel
//
// Confirmation:
//   y         Confirm
//   n/esc     Cancel
//
// Help:
//   up/down   Scroll
//   esc/q/?   Return to list

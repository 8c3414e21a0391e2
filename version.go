package formtree

// Version is the current release of the module and the formtree CLI.
const Version = "0.1.0"

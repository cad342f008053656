package host

// preludeJS aliases the usual browser globals onto the script global so
// page-style scripts can reach navigator through window or self.
const preludeJS = `
if (typeof window === 'undefined') { var window = this; }
if (typeof self === 'undefined') { var self = this; }
if (!window.navigator) { window.navigator = navigator; }
`

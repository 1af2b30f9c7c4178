// Package icons resolves named icon sources to Lucide sprite symbols.
//
// Components refer to icons by stable source names (the names the
// design system publishes, such as CircleTickMajorTwotone) and leave the
// drawing to the embedded sprite, so a theme can swap artwork without
// touching component code.
package icons

/*
Package builder turns a validated registry into a build plan. It is the bridge
between the static declarations (the 'registry' package) and the artifact a
toolchain consumes (the 'plan' package).

The plan construction is a multi-phase process:

 1. Platform Resolution: every declared platform requirement is resolved into
    an enumerated minimum version. Unknown platforms or versions fail with an
    *platform.UnsupportedPlatformError.

 2. Node Creation: the builder creates a *node.Node for every target and every
    product and records it in both the generic DAG and the topology store.

 3. Dependency Linking: target dependencies on other targets of the package
    become explicit edges; every product implicitly depends on the targets it
    ships. Dependencies on products of external packages do not become edges.

 4. Validation: cycles are rejected, then each target's source tree is checked
    against the file system: the target root, every header search path and
    the public headers directory must exist below the package root.

 5. Assembly: targets are emitted in compile order (topological, ties broken by
    name) and the plan is sealed with its fingerprint.
*/
package builder

package scaffold

import (
	"bytes"
	"text/template"

	"github.com/gex-dev/gex/internal/errors"
)

// templateData is the substitution payload for artifact skeletons.
type templateData struct {
	// Package is the pubspec package name.
	Package string

	// Pascal is the type-name stem, e.g. "Flight".
	Pascal string

	// Display is the human-readable label, e.g. "Flight Booking".
	Display string

	// ControllerImport is the package: import of the resource's controller.
	ControllerImport string
}

const controllerSkeleton = `import 'package:get/get.dart';

class {{.Pascal}}Controller extends GetxController {
  final count = 0.obs;

  void increment() => count.value++;
}
`

const bindingSkeleton = `import 'package:get/get.dart';

import '{{.ControllerImport}}';

class {{.Pascal}}Binding extends Bindings {
  @override
  void dependencies() {
    Get.lazyPut<{{.Pascal}}Controller>(() => {{.Pascal}}Controller());
  }
}
`

const screenSkeleton = `import 'package:flutter/material.dart';
import 'package:get/get.dart';

import '{{.ControllerImport}}';

class {{.Pascal}}Screen extends GetView<{{.Pascal}}Controller> {
  const {{.Pascal}}Screen({super.key});

  @override
  Widget build(BuildContext context) {
    return Scaffold(
      appBar: AppBar(
        title: const Text('{{.Display}}'),
      ),
      body: Center(
        child: Obx(() => Text('{{.Display}} count: ${controller.count.value}')),
      ),
    );
  }
}
`

// skeletonFor returns the fixed source skeleton for the kind.
func skeletonFor(k Kind) string {
	switch k {
	case KindController:
		return controllerSkeleton
	case KindBinding:
		return bindingSkeleton
	case KindScreen:
		return screenSkeleton
	}
	return ""
}

// renderArtifact executes the kind's skeleton with the given data.
func renderArtifact(k Kind, data templateData) (string, error) {
	tmpl, err := template.New(string(k)).Parse(skeletonFor(k))
	if err != nil {
		return "", errors.Newf(errors.CategoryIO, "invalid %s skeleton: %v", k, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Newf(errors.CategoryIO, "%s skeleton execute error: %v", k, err)
	}
	return buf.String(), nil
}

package render

const vertex = `
#version 420

layout (location = 0) in vec4 modelCol0;
layout (location = 1) in vec4 modelCol1;
layout (location = 2) in vec4 modelCol2;
layout (location = 3) in vec4 modelCol3;
layout (location = 4) in vec3 vertPos;
layout (location = 5) in vec2 vertTexCoord;

layout (std140, binding = 0) uniform Camera {
    mat4 viewProj;
};

out vec2 fragTexCoord;

void main() {
    // The instance's model matrix arrives as four column vectors and is
    // reassembled here, in slot order.
    mat4 model = mat4(modelCol0, modelCol1, modelCol2, modelCol3);

    fragTexCoord = vertTexCoord;
    gl_Position  = viewProj * model * vec4(vertPos, 1.0);
}

`
const fragment = `
#version 420

layout (binding = 0) uniform sampler2D diffuse;

in  vec2 fragTexCoord;
out vec4 outputColor;

void main() {
    outputColor = texture(diffuse, fragTexCoord);
}
`

package graphics

// ── Shared vertex shader ──────────────────────────────────────────────────────

// All lit shaders share this vertex stage: positions go through the
// precomposed MVP, world-space position and normal go to the fragment stage.
const forwardVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;
layout(location = 3) in vec4 inColor;

uniform mat4 u_Model;
uniform mat4 u_ModelViewProjection;
uniform mat3 u_NormalMatrix;

out vec3 fragWorldPos;
out vec3 fragNormal;
out vec2 fragUV;
out vec4 fragColor;

void main() {
    gl_Position  = u_ModelViewProjection * vec4(inPosition, 1.0);
    fragWorldPos = (u_Model * vec4(inPosition, 1.0)).xyz;
    fragNormal   = u_NormalMatrix * inNormal;
    fragUV       = inUV;
    fragColor    = inColor;
}
` + "\x00"

// ── Blinn-Phong ───────────────────────────────────────────────────────────────

// Textured Blinn-Phong with a single point light and a lighting-mode switch:
//   0 = unlit, 1 = ambient only, 2 = specular only,
//   3 = ambient + specular, 4 = ambient + specular with toon banding.
const blinnPhongFragSrc = `
#version 410 core
in vec3 fragWorldPos;
in vec3 fragNormal;
in vec2 fragUV;
in vec4 fragColor;

out vec4 outColor;

uniform int u_LightingMode;

uniform vec3  u_LightPos;
uniform vec3  u_LightCol;
uniform float u_AmbientLightStrength;
uniform float u_SpecularLightStrength;
uniform vec3  u_AmbientCol;
uniform float u_AmbientStrength;
uniform float u_LightAttenuationConstant;
uniform float u_LightAttenuationLinear;
uniform float u_LightAttenuationQuadratic;
uniform float u_Shininess;

uniform vec3 u_CamPos;

uniform sampler2D s_Diffuse;
uniform sampler2D s_Diffuse2;
uniform float     u_TextureMix;

void main() {
    vec4 baseColor = mix(texture(s_Diffuse, fragUV), texture(s_Diffuse2, fragUV), u_TextureMix);
    baseColor *= fragColor;

    if (u_LightingMode == 0) {
        outColor = baseColor;
        return;
    }

    vec3 N = normalize(fragNormal);
    vec3 toLight = u_LightPos - fragWorldPos;
    float dist   = length(toLight);
    vec3 L = toLight / dist;
    vec3 V = normalize(u_CamPos - fragWorldPos);
    vec3 H = normalize(L + V);

    vec3 ambient = u_AmbientLightStrength * u_LightCol + u_AmbientCol * u_AmbientStrength;

    float dif = max(dot(N, L), 0.0);
    if (u_LightingMode == 4) {
        // Toon banding: quantize the diffuse term
        float bands = 4.0;
        dif = floor(dif * bands) / bands;
    }
    vec3 diffuse = dif * u_LightCol;

    vec3 specular = vec3(0.0);
    if (dif > 0.0) {
        float spec = pow(max(dot(N, H), 0.0), u_Shininess);
        specular = u_SpecularLightStrength * spec * u_LightCol;
    }

    float attenuation = 1.0 / (u_LightAttenuationConstant
        + u_LightAttenuationLinear * dist
        + u_LightAttenuationQuadratic * dist * dist);

    vec3 lit;
    if (u_LightingMode == 1) {
        lit = ambient;
    } else if (u_LightingMode == 2) {
        lit = attenuation * specular;
    } else {
        lit = ambient + attenuation * (diffuse + specular);
    }

    outColor = vec4(lit * baseColor.rgb, baseColor.a);
}
` + "\x00"

// ── Environment reflection ────────────────────────────────────────────────────

const reflectionFragSrc = `
#version 410 core
in vec3 fragWorldPos;
in vec3 fragNormal;
in vec2 fragUV;
in vec4 fragColor;

out vec4 outColor;

uniform vec3        u_CamPos;
uniform samplerCube s_Environment;
uniform mat3        u_EnvironmentRotation;

void main() {
    vec3 N = normalize(fragNormal);
    vec3 V = normalize(u_CamPos - fragWorldPos);
    vec3 R = reflect(-V, N);
    outColor = texture(s_Environment, u_EnvironmentRotation * R);
}
` + "\x00"

// Blinn-Phong blended with an environment reflection by u_Reflectivity.
const blinnPhongReflectionFragSrc = `
#version 410 core
in vec3 fragWorldPos;
in vec3 fragNormal;
in vec2 fragUV;
in vec4 fragColor;

out vec4 outColor;

uniform int u_LightingMode;

uniform vec3  u_LightPos;
uniform vec3  u_LightCol;
uniform float u_AmbientLightStrength;
uniform float u_SpecularLightStrength;
uniform vec3  u_AmbientCol;
uniform float u_AmbientStrength;
uniform float u_LightAttenuationConstant;
uniform float u_LightAttenuationLinear;
uniform float u_LightAttenuationQuadratic;
uniform float u_Shininess;

uniform vec3 u_CamPos;

uniform sampler2D   s_Diffuse;
uniform samplerCube s_Environment;
uniform mat3        u_EnvironmentRotation;
uniform float       u_Reflectivity;

void main() {
    vec4 baseColor = texture(s_Diffuse, fragUV) * fragColor;

    vec3 N = normalize(fragNormal);
    vec3 V = normalize(u_CamPos - fragWorldPos);

    vec3 lit = baseColor.rgb;
    if (u_LightingMode != 0) {
        vec3 toLight = u_LightPos - fragWorldPos;
        float dist   = length(toLight);
        vec3 L = toLight / dist;
        vec3 H = normalize(L + V);

        vec3 ambient = u_AmbientLightStrength * u_LightCol + u_AmbientCol * u_AmbientStrength;

        float dif = max(dot(N, L), 0.0);
        if (u_LightingMode == 4) {
            float bands = 4.0;
            dif = floor(dif * bands) / bands;
        }
        vec3 diffuse = dif * u_LightCol;

        vec3 specular = vec3(0.0);
        if (dif > 0.0) {
            float spec = pow(max(dot(N, H), 0.0), u_Shininess);
            specular = u_SpecularLightStrength * spec * u_LightCol;
        }

        float attenuation = 1.0 / (u_LightAttenuationConstant
            + u_LightAttenuationLinear * dist
            + u_LightAttenuationQuadratic * dist * dist);

        if (u_LightingMode == 1) {
            lit = ambient * baseColor.rgb;
        } else if (u_LightingMode == 2) {
            lit = attenuation * specular * baseColor.rgb;
        } else {
            lit = (ambient + attenuation * (diffuse + specular)) * baseColor.rgb;
        }
    }

    vec3 R = reflect(-V, N);
    vec3 reflection = texture(s_Environment, u_EnvironmentRotation * R).rgb;

    outColor = vec4(mix(lit, reflection, u_Reflectivity), baseColor.a);
}
` + "\x00"

// ── Skybox ────────────────────────────────────────────────────────────────────

// The skybox matrix is the projection composed with the rotation-only view.
// Writing xyww forces depth to 1.0 so the sky always sits behind geometry.
const skyboxVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;

uniform mat4 u_SkyboxMatrix;
uniform mat3 u_EnvironmentRotation;

out vec3 fragTexDir;

void main() {
    fragTexDir = u_EnvironmentRotation * inPosition;
    vec4 pos = u_SkyboxMatrix * vec4(inPosition, 1.0);
    gl_Position = pos.xyww;
}
` + "\x00"

const skyboxFragSrc = `
#version 410 core
in vec3 fragTexDir;

out vec4 outColor;

uniform samplerCube s_Environment;

void main() {
    outColor = texture(s_Environment, fragTexDir);
}
` + "\x00"

// NewBlinnPhongShader compiles the standard textured lit shader.
func NewBlinnPhongShader() (*Shader, error) {
	return NewShader(forwardVertSrc, blinnPhongFragSrc)
}

// NewReflectionShader compiles the pure environment-reflection shader.
func NewReflectionShader() (*Shader, error) {
	return NewShader(forwardVertSrc, reflectionFragSrc)
}

// NewBlinnPhongReflectionShader compiles the lit shader blended with an
// environment reflection.
func NewBlinnPhongReflectionShader() (*Shader, error) {
	return NewShader(forwardVertSrc, blinnPhongReflectionFragSrc)
}

// NewSkyboxShader compiles the cubemap sky shader.
func NewSkyboxShader() (*Shader, error) {
	return NewShader(skyboxVertSrc, skyboxFragSrc)
}
